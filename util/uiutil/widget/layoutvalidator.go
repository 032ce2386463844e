package widget

import (
	"go.uber.org/zap"
)

// LayoutValidator collects the validate roots of invalidated trees and lays them out once per batch. One per session, only used from the ui goroutine.
type LayoutValidator struct {
	ctx UIContext
	log *zap.Logger

	invalidComponents []*EmbedNode
	postValidateFns   []func()
	scheduled         bool
}

func NewLayoutValidator(ctx UIContext, log *zap.Logger) *LayoutValidator {
	if log == nil {
		log = zap.NewNop()
	}
	return &LayoutValidator{ctx: ctx, log: log}
}

//----------

// Invalidates the node and its ancestors up to the next validate root (or the tree root) and queues that root.
func (lv *LayoutValidator) InvalidateTree(en *EmbedNode) {
	root := invalidateUpToValidateRoot(en)
	lv.Invalidate(root)
}

// Queues the node for validation. A node already queued is not added again. The node is inserted before any queued descendant so the descendant is laid out by its ancestor first.
func (lv *LayoutValidator) Invalidate(en *EmbedNode) {
	for _, c := range lv.invalidComponents {
		if c == en {
			return
		}
	}
	lv.invalidComponents = insertAt(lv.invalidComponents, lv.insertPos(en), en)
	lv.scheduleValidation()
}

func (lv *LayoutValidator) insertPos(en *EmbedNode) int {
	for i, c := range lv.invalidComponents {
		if c.IsDescendantOf(en) {
			return i
		}
	}
	return len(lv.invalidComponents)
}

func (lv *LayoutValidator) scheduleValidation() {
	if lv.scheduled || lv.ctx == nil {
		return
	}
	lv.scheduled = true
	lv.ctx.RunOnUIGoRoutine(func() {
		// a synchronous validate may have already run
		if !lv.scheduled {
			return
		}
		lv.Validate()
	})
}

//----------

// Lays out every queued component. Components that could not be validated (hidden, detached, animating) stay queued.
func (lv *LayoutValidator) Validate() {
	lv.scheduled = false

	comps := append([]*EmbedNode(nil), lv.invalidComponents...)
	for _, c := range comps {
		if c.ValidateLayout() {
			// also drops the entry if c got queued again while laying out: the new request is lost and c stays valid
			lv.remove(c)
		}
	}

	fns := lv.postValidateFns
	lv.postValidateFns = nil
	for _, fn := range fns {
		fn()
	}

	if len(lv.invalidComponents) > 0 {
		lv.log.Debug("layout validation postponed", zap.Int("components", len(lv.invalidComponents)))
	}
}

// Runs fn after the next validation.
func (lv *LayoutValidator) SchedulePostValidateFunc(fn func()) {
	lv.postValidateFns = append(lv.postValidateFns, fn)
}

// Drops queued components that are the given node, inside it, or detached.
func (lv *LayoutValidator) CleanupInvalidComponents(container *EmbedNode) {
	u := lv.invalidComponents[:0]
	for _, c := range lv.invalidComponents {
		if c == container || c.IsDescendantOf(container) || !c.IsAttached() {
			continue
		}
		u = append(u, c)
	}
	for i := len(u); i < len(lv.invalidComponents); i++ {
		lv.invalidComponents[i] = nil
	}
	lv.invalidComponents = u
}

func (lv *LayoutValidator) InvalidComponents() []*EmbedNode {
	return append([]*EmbedNode(nil), lv.invalidComponents...)
}

func (lv *LayoutValidator) remove(en *EmbedNode) {
	for i, c := range lv.invalidComponents {
		if c == en {
			lv.invalidComponents = append(lv.invalidComponents[:i], lv.invalidComponents[i+1:]...)
			return
		}
	}
}

//----------

func invalidateUpToValidateRoot(en *EmbedNode) *EmbedNode {
	source := en
	for c := en; ; c = c.Parent {
		c.InvalidateLayout(source)
		if c.IsValidateRoot() || c.Parent == nil {
			return c
		}
		source = c
	}
}

func insertAt(u []*EmbedNode, i int, en *EmbedNode) []*EmbedNode {
	u = append(u, nil)
	copy(u[i+1:], u[i:])
	u[i] = en
	return u
}
