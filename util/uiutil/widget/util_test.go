package widget

import (
	"image"
)

type testCtx struct {
	fns  []func()
	errs []error
}

func (ctx *testCtx) Error(err error) {
	ctx.errs = append(ctx.errs, err)
}
func (ctx *testCtx) RunOnUIGoRoutine(f func()) {
	ctx.fns = append(ctx.fns, f)
}
func (ctx *testCtx) run() {
	fns := ctx.fns
	ctx.fns = nil
	for _, f := range fns {
		f()
	}
}

//----------

type countingLayout struct {
	l          Layout
	count      int
	prefCount  int
	invalidate int
}

func (cl *countingLayout) Layout(en *EmbedNode) {
	cl.count++
	cl.l.Layout(en)
}
func (cl *countingLayout) PreferredLayoutSize(en *EmbedNode, opts PrefSizeOptions) image.Point {
	cl.prefCount++
	return cl.l.PreferredLayoutSize(en, opts)
}
func (cl *countingLayout) Invalidate(source *EmbedNode) {
	cl.invalidate++
	cl.l.Invalidate(source)
}

//----------

// Records the hints it gets, prefers the width hint.
type hintLayout struct {
	AbstractLayout
	opts []PrefSizeOptions
}

func (hl *hintLayout) Layout(en *EmbedNode) {}
func (hl *hintLayout) PreferredLayoutSize(en *EmbedNode, opts PrefSizeOptions) image.Point {
	hl.opts = append(hl.opts, opts)
	return image.Point{opts.WidthHint, 10}.Add(en.Insets().Size())
}

//----------

func newTestRoot() *ENode {
	root := &ENode{}
	root.SetWrapperForRoot(root)
	root.SetAttachedForRoot(true)
	return root
}

func newTestNode(l Layout) *ENode {
	n := &ENode{}
	n.SetLayout(l)
	return n
}
