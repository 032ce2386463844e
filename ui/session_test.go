package ui

import (
	"image"
	"testing"

	"github.com/jmigpin/formlayout/util/uiutil/widget"
	"github.com/stretchr/testify/assert"
)

func TestSessionDefaults(t *testing.T) {
	s, _ := newTestSession(t)
	assert.Equal(t, DefaultLayoutEnv(), s.Env)
	assert.NotNil(t, s.Font)
	assert.NotNil(t, s.Registry)
	assert.True(t, s.Desktop.IsAttached())
	assert.Same(t, s.Validator, s.Desktop.Validator())
}

func TestSessionEnv(t *testing.T) {
	env := DefaultLayoutEnv()
	env.ColumnWidth = 100
	env.HGap = 10
	s := NewSession(nil, SessionOptions{Env: &env})
	_, _, fs := newTestForm(t, s, 2, 2)
	s.Desktop.Resize(image.Pt(210, 100))
	assert.Equal(t, image.Rect(110, 0, 210, 30), absBounds(fs[1]))
}

func TestSessionClose(t *testing.T) {
	s, ctx := newTestSession(t)
	_, _, fs := newTestForm(t, s, 2, 2)
	s.Desktop.Resize(image.Pt(872, 300))
	fs[0].SetLabel("Other")
	assert.NotEmpty(t, s.Validator.InvalidComponents())

	s.Close()
	assert.True(t, s.Closed())
	assert.False(t, s.Desktop.IsAttached())
	assert.Empty(t, s.Validator.InvalidComponents())

	// detached trees are not laid out
	fs[1].SetLabel("Other")
	ctx.run()
	assert.False(t, fs[1].IsValid())
	s.Close()
}

func TestLabelPrefSize(t *testing.T) {
	s, _ := newTestSession(t)
	l := NewLabel(s, "Hello world")
	lh := s.Font.LineHeightInt()
	w := s.Font.TextWidth("Hello world")
	assert.Equal(t, image.Pt(w, lh), l.PrefSize(widget.PrefSizeOptions{}))

	l.Wrap = true
	l.InvalidateLayout(nil)
	hint := s.Font.TextWidth("Hello") + 1
	ps := l.PrefSize(widget.PrefSizeOptions{WidthHint: hint})
	assert.Equal(t, 2*lh, ps.Y)

	l.Pad = widget.UniformInsets(2)
	l.InvalidateLayout(nil)
	assert.Equal(t, image.Pt(w+4, lh+4), l.PrefSize(widget.PrefSizeOptions{}))

	l.SetVisible(false)
	assert.Equal(t, image.Point{}, l.PrefSize(widget.PrefSizeOptions{}))
}
