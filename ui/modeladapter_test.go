package ui

import (
	"image"
	"testing"

	"github.com/jmigpin/formlayout/util/uiutil/widget/logicalgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldAdapter(t *testing.T) {
	s, ctx := newTestSession(t)
	_, gb, fs := newTestForm(t, s, 2, 3)
	s.Desktop.Resize(image.Pt(872, 300))
	ctx.run()

	a := NewFieldAdapter(fs[0])
	assert.Same(t, fs[0], a.Widget())

	require.NoError(t, a.OnModelPropertyChange(PropLabel, "Street"))
	assert.Equal(t, "Street", fs[0].LabelText())
	assert.NotEmpty(t, s.Validator.InvalidComponents())
	ctx.run()

	require.NoError(t, a.OnModelPropertyChange(PropVisible, false))
	assert.True(t, gb.Grid().Dirty())
	ctx.run()
	assert.Equal(t, image.Rect(0, 0, 420, 30), absBounds(fs[1]))

	hints := fs[0].GridDataHints()
	hints.W = 2
	require.NoError(t, a.OnModelPropertyChange(PropGridDataHints, hints))
	require.NoError(t, a.OnModelPropertyChange(PropVisible, true))
	ctx.run()
	assert.Equal(t, image.Rect(0, 0, 872, 30), absBounds(fs[0]))
	assert.Equal(t, image.Rect(0, 40, 420, 70), absBounds(fs[1]))
}

func TestFieldAdapterGroupBoxLabel(t *testing.T) {
	s, _ := newTestSession(t)
	gb := NewGroupBox(s)
	require.NoError(t, NewFieldAdapter(gb).OnModelPropertyChange(PropLabel, "Address"))
	assert.Equal(t, "Address", gb.Title.Text())
	assert.True(t, gb.Title.IsVisible())
}

func TestFieldAdapterErrors(t *testing.T) {
	s, _ := newTestSession(t)
	a := NewFieldAdapter(NewFormField(s))

	err := a.OnModelPropertyChange(PropVisible, "yes")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedProperty)

	err = a.OnModelPropertyChange("color", "red")
	assert.ErrorIs(t, err, ErrUnsupportedProperty)

	la := NewFieldAdapter(NewLabel(s, "x"))
	assert.ErrorIs(t, la.OnModelPropertyChange(PropLabel, "y"), ErrUnsupportedProperty)
	assert.ErrorIs(t, la.OnModelPropertyChange(PropGridDataHints, logicalgrid.NewGridData()), ErrUnsupportedProperty)
	assert.NoError(t, la.OnModelPropertyChange(PropVisible, false))
}
