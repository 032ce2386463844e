package ui

import (
	"image"
	"testing"

	"go.uber.org/zap/zaptest"
)

type testCtx struct {
	fns  []func()
	errs []error
}

func (c *testCtx) Error(err error) {
	c.errs = append(c.errs, err)
}

func (c *testCtx) RunOnUIGoRoutine(f func()) {
	c.fns = append(c.fns, f)
}

func (c *testCtx) run() {
	for len(c.fns) > 0 {
		fns := c.fns
		c.fns = nil
		for _, f := range fns {
			f()
		}
	}
}

//----------

func newTestSession(t *testing.T) (*Session, *testCtx) {
	t.Helper()
	ctx := &testCtx{}
	s := NewSession(ctx, SessionOptions{Log: zaptest.NewLogger(t)})
	return s, ctx
}

// Form with a root group box of the given columns and n labeled fields, opened on the desktop.
func newTestForm(t *testing.T, s *Session, cols, n int) (*Form, *GroupBox, []*FormField) {
	t.Helper()
	f := NewForm(s)
	gb := NewGroupBox(s)
	gb.SetColumnCount(cols)
	fields := []*FormField{}
	for i := 0; i < n; i++ {
		ff := NewFormField(s)
		ff.SetLabel("Field")
		gb.AddField(ff)
		fields = append(fields, ff)
	}
	f.SetRootGroupBox(gb)
	s.Desktop.OpenForm(f)
	return f, gb, fields
}

func absBounds(w Widget) image.Rectangle {
	return w.Embed().AbsoluteBounds()
}
