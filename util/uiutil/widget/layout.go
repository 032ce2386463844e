package widget

import (
	"image"
)

// Layout is the strategy a container uses to size and position its children.
type Layout interface {
	// Sets the bounds of the children given the current size of the container (already resolved by the parent). Must be idempotent and must not fail for unready children.
	Layout(en *EmbedNode)
	// Size the container would like to have, insets included. The hints already have the insets and margins removed.
	PreferredLayoutSize(en *EmbedNode, opts PrefSizeOptions) image.Point
	// Called when the container gets invalidated, source is the node the invalidation originated from (can be nil).
	Invalidate(source *EmbedNode)
}

//----------

// Embeddable base with a no-op Invalidate.
type AbstractLayout struct{}

func (AbstractLayout) Invalidate(source *EmbedNode) {}

//----------

// Default layout: packs the children to their preferred size keeping their location.
type NullLayout struct {
	AbstractLayout
}

func (NullLayout) Layout(en *EmbedNode) {
	en.Iterate2(func(c *EmbedNode) {
		c.Pack()
	})
}

func (NullLayout) PreferredLayoutSize(en *EmbedNode, opts PrefSizeOptions) image.Point {
	var max image.Point
	en.Iterate2(func(c *EmbedNode) {
		ps := c.PrefSize(PrefSizeOptions{IncludeMargin: true})
		if ps == (image.Point{}) {
			return
		}
		p := c.Location().Add(ps)
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	})
	return max.Add(en.Insets().Size())
}

//----------

// Lays out the first visible child filling the container minus the insets.
type SingleLayout struct {
	AbstractLayout
}

func (SingleLayout) Layout(en *EmbedNode) {
	c := firstVisibleChild(en)
	if c == nil {
		return
	}
	r := image.Rectangle{Max: en.AvailableSize()}
	r = en.Insets().Shrink(r)
	r = c.Margins().Shrink(r)
	c.SetBounds(r)
}

func (SingleLayout) PreferredLayoutSize(en *EmbedNode, opts PrefSizeOptions) image.Point {
	c := firstVisibleChild(en)
	if c == nil {
		return en.Insets().Size()
	}
	ps := c.PrefSize(PrefSizeOptions{
		WidthHint:     opts.WidthHint,
		HeightHint:    opts.HeightHint,
		WidthOnly:     opts.WidthOnly,
		IncludeMargin: true,
	})
	return ps.Add(en.Insets().Size())
}

func firstVisibleChild(en *EmbedNode) *EmbedNode {
	var u *EmbedNode
	en.Iterate(func(c *EmbedNode) bool {
		if c.IsVisible() {
			u = c
			return false
		}
		return true
	})
	return u
}
