package widget

import (
	"image"
)

// Size negotiation between a node and the layout of its parent.
//
// The parent layout calls SetSize/SetBounds on the children (top-down). If a child changes in a way that affects its size, the ancestors up to the next validate root are invalidated with InvalidateLayoutTree (bottom-up) and the layout validator lays them out again.

type PrefSizeOptions struct {
	// Zero means no hint. Margins and insets are removed before reaching the layout.
	WidthHint  int
	HeightHint int
	// Only the preferred width is of interest (layout dependent).
	WidthOnly bool

	IncludeMargin     bool
	KeepMarginInHints bool
	KeepInsetsInHints bool
}

type prefSizeKey struct {
	w, h      int
	widthOnly bool
}

func (o *PrefSizeOptions) key() prefSizeKey {
	return prefSizeKey{o.WidthHint, o.HeightHint, o.WidthOnly}
}

//----------

func (en *EmbedNode) Layout() Layout {
	if en.layout == nil {
		return NullLayout{}
	}
	return en.layout
}

func (en *EmbedNode) SetLayout(l Layout) {
	en.layout = l
	en.InvalidateLayout(nil)
}

//----------

func (en *EmbedNode) Insets() Insets {
	return en.Pad
}
func (en *EmbedNode) Margins() Insets {
	return en.Margin
}

// Size including insets, excluding margins.
func (en *EmbedNode) Size() image.Point {
	return en.Bounds.Size()
}

func (en *EmbedNode) Location() image.Point {
	return en.Bounds.Min
}

func (en *EmbedNode) SetLocation(p image.Point) {
	en.Bounds = en.Bounds.Sub(en.Bounds.Min).Add(p)
}

// Sets the size (insets included) and validates the layout of the node.
func (en *EmbedNode) SetSize(size image.Point) {
	en.SetBounds(image.Rectangle{en.Bounds.Min, en.Bounds.Min.Add(size)})
}

func (en *EmbedNode) SetBounds(r image.Rectangle) {
	if !en.IsAttachedAndVisible() {
		// sizes of invisible nodes are not reliable, keep the layout invalid
		return
	}
	if r.Size() != en.sizeCached {
		en.InvalidateLayout(nil)
	}
	en.Bounds = r
	en.ValidateLayout()
}

// Sets the node to its preferred size.
func (en *EmbedNode) Pack() {
	en.SetSize(en.PrefSize(PrefSizeOptions{}))
}

// The current size, or for scrollable nodes, the preferred height if greater than the current height. The width is always the current width.
func (en *EmbedNode) AvailableSize() image.Point {
	size := en.Size()
	if en.HasAnyMarks(MarkScrollable) {
		ps := en.PrefSize(PrefSizeOptions{
			WidthHint: size.X,
			// the width of this node is used as hint, keep the margin
			KeepMarginInHints: true,
		})
		if ps.Y > size.Y {
			size.Y = ps.Y
		}
	}
	return size
}

//----------

// Returns the preferred size, insets included, margins excluded unless requested. The value is cached per hints until the node is invalidated.
func (en *EmbedNode) PrefSize(opts PrefSizeOptions) image.Point {
	if !en.IsVisible() {
		return image.Point{}
	}

	includeMargin := opts.IncludeMargin
	opts.IncludeMargin = false

	key := opts.key()
	if ps, ok := en.prefSizeCache[key]; ok {
		if includeMargin {
			ps = ps.Add(en.Margin.Size())
		}
		return ps
	}

	if opts.WidthHint != 0 || opts.HeightHint != 0 {
		en.adjustHintsForPrefSize(&opts)
	}

	ps := en.Layout().PreferredLayoutSize(en, opts)
	if w, ok := en.StylePx("width"); ok {
		ps.X = w
	}
	if h, ok := en.StylePx("height"); ok {
		ps.Y = h
	}
	ps = en.clampMinMax(ps)

	if en.prefSizeCache == nil {
		en.prefSizeCache = map[prefSizeKey]image.Point{}
	}
	en.prefSizeCache[key] = ps

	if includeMargin {
		ps = ps.Add(en.Margin.Size())
	}
	return ps
}

// Removes margins and insets from the hints so the layout does not need to take care of it, and keeps the hints inside the min/max sizes.
func (en *EmbedNode) adjustHintsForPrefSize(opts *PrefSizeOptions) {
	margins := Insets{}
	if !opts.KeepMarginInHints {
		margins = en.Margin
	}
	insets := Insets{}
	if !opts.KeepInsetsInHints {
		insets = en.Pad
	}
	opts.KeepMarginInHints = false
	opts.KeepInsetsInHints = false

	// order matters: min/max sizes include the insets
	if opts.WidthHint != 0 {
		w := opts.WidthHint - margins.Horizontal()
		w = clampAxis(w, en.MinSize.X, en.MaxSize.X)
		opts.WidthHint = imax(w-insets.Horizontal(), 0)
	}
	if opts.HeightHint != 0 {
		h := opts.HeightHint - margins.Vertical()
		h = clampAxis(h, en.MinSize.Y, en.MaxSize.Y)
		opts.HeightHint = imax(h-insets.Vertical(), 0)
	}
}

func (en *EmbedNode) clampMinMax(p image.Point) image.Point {
	p.X = clampAxis(p.X, en.MinSize.X, en.MaxSize.X)
	p.Y = clampAxis(p.Y, en.MinSize.Y, en.MaxSize.Y)
	return p
}

func clampAxis(v, min, max int) int {
	if v < min {
		v = min
	}
	if max > 0 && v > max {
		v = max
	}
	return v
}

//----------

func (en *EmbedNode) IsValid() bool {
	return en.HasAnyMarks(MarkValid)
}

// Marks the layout as stale and clears the preferred size cache.
func (en *EmbedNode) InvalidateLayout(source *EmbedNode) {
	en.marks.Remove(MarkValid)
	en.prefSizeCache = nil
	en.Layout().Invalidate(source)
}

// Lays out the children if the node is not valid. Returns false if it could not be done (hidden, detached, animating).
func (en *EmbedNode) ValidateLayout() bool {
	if en.IsValid() {
		return true
	}
	if en.HasAnyMarks(MarkSuppressValidate | MarkLayouting) {
		return false
	}
	if !en.validationPossible() {
		return false
	}

	en.marks.Add(MarkLayouting)
	en.Layout().Layout(en)
	en.marks.Remove(MarkLayouting)
	en.marks.Add(MarkLayouted | MarkValid)
	en.sizeCached = en.Size()
	return true
}

func (en *EmbedNode) validationPossible() bool {
	if !en.IsAttachedAndVisible() {
		return false
	}
	if en.HasAnyMarks(MarkAnimating) {
		en.afterAnimation(en)
		return false
	}

	// ancestors were already checked if the parent is being layouted
	if en.Parent != nil && en.Parent.HasAnyMarks(MarkLayouting) {
		return true
	}
	for p := en.Parent; p != nil; p = p.Parent {
		if p.HasAnyMarks(MarkHidden) {
			return false
		}
		if p.HasAnyMarks(MarkAnimating) {
			p.afterAnimation(en)
			return false
		}
	}
	return true
}

func (en *EmbedNode) RevalidateLayout() {
	en.InvalidateLayout(nil)
	en.ValidateLayout()
}

//----------

// Uses the layout validator to invalidate the tree up to the next validate root. If invalidateParents is false, only this node is invalidated. The validator schedules the validation.
func (en *EmbedNode) InvalidateLayoutTree(invalidateParents bool) {
	if en.HasAnyMarks(MarkSuppressInvalidate) {
		return
	}
	v := en.Validator()
	if v == nil {
		// not in a tree with a validator: nothing to schedule
		if invalidateParents {
			invalidateUpToValidateRoot(en)
		} else {
			en.InvalidateLayout(nil)
		}
		return
	}
	if invalidateParents {
		v.InvalidateTree(en)
	} else {
		en.InvalidateLayout(nil)
		v.Invalidate(en)
	}
}

// Lays out all invalid nodes of the tree.
func (en *EmbedNode) ValidateLayoutTree() {
	if en.HasAnyMarks(MarkSuppressValidate) {
		return
	}
	if v := en.Validator(); v != nil {
		v.Validate()
	}
}

func (en *EmbedNode) RevalidateLayoutTree(invalidateParents bool) {
	if en.HasAnyMarks(MarkSuppressInvalidate) {
		return
	}
	en.InvalidateLayoutTree(invalidateParents)
	en.ValidateLayoutTree()
}

//----------

// A validate root's size doesn't depend on the visibility or bounds of its children. Invalidation stops at validate roots.
func (en *EmbedNode) IsValidateRoot() bool {
	if en.HasAnyMarks(MarkValidateRoot) {
		return true
	}
	if vr, ok := en.LayoutData.(interface{ IsValidateRoot() bool }); ok {
		return vr.IsValidateRoot()
	}
	return false
}

func (en *EmbedNode) SetValidateRoot(v bool) {
	en.marks.Modify(MarkValidateRoot, v)
}

func (en *EmbedNode) SetScrollable(v bool) {
	en.marks.Modify(MarkScrollable, v)
}

//----------

func (en *EmbedNode) IsVisible() bool {
	return !en.HasAnyMarks(MarkHidden)
}

// Changing the visibility invalidates the parent tree since the parent layout depends on it.
func (en *EmbedNode) SetVisible(v bool) {
	if en.IsVisible() == v {
		return
	}
	en.marks.Modify(MarkHidden, !v)
	if en.Parent != nil {
		en.Parent.InvalidateLayoutTree(true)
	} else {
		en.InvalidateLayoutTree(false)
	}
}

// Attached nodes belong to a tree whose root was attached by the host.
func (en *EmbedNode) IsAttached() bool {
	return en.Root().attached
}

func (en *EmbedNode) IsAttachedAndVisible() bool {
	return en.IsVisible() && en.IsAttached()
}

// Only the root node should be attached/detached.
func (en *EmbedNode) SetAttachedForRoot(v bool) {
	if en.Parent != nil {
		panic("not a root node")
	}
	en.attached = v
	if v {
		en.InvalidateLayoutTree(false)
	}
}

//----------

func (en *EmbedNode) SetLayoutValidatorForRoot(v *LayoutValidator) {
	if en.Parent != nil {
		panic("not a root node")
	}
	en.validator = v
}

func (en *EmbedNode) Validator() *LayoutValidator {
	return en.Root().validator
}

//----------

// Validation of the node and of its descendants is postponed until the animation ends.
func (en *EmbedNode) SetAnimating(v bool) {
	if en.HasAnyMarks(MarkAnimating) == v {
		return
	}
	en.marks.Modify(MarkAnimating, v)
	if v {
		return
	}
	waiters := en.animationEnd
	en.animationEnd = nil
	for _, w := range waiters {
		w.ValidateLayout()
	}
}

func (en *EmbedNode) afterAnimation(waiter *EmbedNode) {
	for _, w := range en.animationEnd {
		if w == waiter {
			return
		}
	}
	en.animationEnd = append(en.animationEnd, waiter)
}

//----------

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
