package logicalgrid

import (
	"image"
	"testing"

	"github.com/jmigpin/formlayout/util/uiutil/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

type testContainer struct {
	widget.ENode
	cfg    *testConfig
	grid   *LogicalGrid
	layout *LogicalGridLayout
}

func newTestContainer(t *testing.T, cols int, ws ...*testWidget) (*widget.ENode, *testContainer) {
	t.Helper()
	root := &widget.ENode{}
	root.SetWrapperForRoot(root)
	root.SetAttachedForRoot(true)

	c := &testContainer{cfg: &testConfig{cols: cols, widgets: ws}}
	c.grid = NewLogicalGrid(NewVerticalSmartGrid())
	c.grid.SetGridConfig(c.cfg)
	c.layout = NewLogicalGridLayout(c.grid, testLayoutOpts, zaptest.NewLogger(t))
	c.SetLayout(c.layout)
	for _, w := range ws {
		c.Append(w)
	}
	root.Append(c)
	return root, c
}

//----------

func TestLogicalGridLayout1(t *testing.T) {
	a := newTestWidget(1, 1)
	a.hints.WeightX = 0
	b := newTestWidget(1, 1)
	_, c := newTestContainer(t, 2, a, b)

	c.SetBounds(image.Rect(0, 0, 500, 400))
	assert.True(t, c.IsValid())
	assert.Equal(t, image.Rect(0, 0, 50, 30), a.Bounds)
	assert.Equal(t, image.Rect(55, 0, 500, 30), b.Bounds)

	ld, ok := b.LayoutData.(LogicalGridData)
	require.True(t, ok)
	assert.Equal(t, 1, ld.GridX)
}

func TestLogicalGridLayoutPrefSize(t *testing.T) {
	a := newTestWidget(1, 1)
	b := newTestWidget(1, 1)
	c1 := newTestWidget(FullWidth, 2)
	_, c := newTestContainer(t, 2, a, b, c1)
	c.Pad = widget.UniformInsets(4)

	ps := c.PrefSize(widget.PrefSizeOptions{})
	// 2 columns, 3 rows, gaps and insets
	assert.Equal(t, image.Pt(4+50+5+50+4, 4+30+5+30+5+30+4), ps)

	c.layout.Opts.MinWidth = 300
	c.InvalidateLayout(nil)
	ps = c.PrefSize(widget.PrefSizeOptions{})
	assert.Equal(t, 300, ps.X)
}

func TestLogicalGridLayoutAlignment(t *testing.T) {
	a := newTestWidget(1, 1)
	a.hints.FillHorizontal = false
	a.hints.HorizontalAlignment = AlignCenter
	a.MinSize = image.Pt(20, 10)
	b := newTestWidget(1, 1)
	b.hints.FillVertical = false
	b.hints.VerticalAlignment = AlignEnd
	b.MinSize = image.Pt(20, 10)
	_, c := newTestContainer(t, 1, a, b)

	c.SetBounds(image.Rect(0, 0, 500, 400))
	assert.Equal(t, image.Rect(240, 0, 260, 30), a.Bounds)
	assert.Equal(t, image.Rect(0, 55, 500, 65), b.Bounds)
}

func TestLogicalGridLayoutMargins(t *testing.T) {
	a := newTestWidget(1, 1)
	a.Margin = widget.NewInsets(1, 2, 3, 4)
	_, c := newTestContainer(t, 1, a)

	c.SetBounds(image.Rect(0, 0, 100, 100))
	assert.Equal(t, image.Rect(4, 1, 98, 27), a.Bounds)
}

func TestLogicalGridLayoutHiddenWidget(t *testing.T) {
	a := newTestWidget(1, 1)
	b := newTestWidget(1, 1)
	_, c := newTestContainer(t, 1, a, b)

	c.SetBounds(image.Rect(0, 0, 100, 100))
	assert.Equal(t, image.Rect(0, 35, 100, 65), b.Bounds)

	a.SetVisible(false)
	c.grid.SetDirty(true)
	c.RevalidateLayout()
	assert.Equal(t, image.Rect(0, 0, 100, 30), b.Bounds)
}

func TestLogicalGridLayoutNoConfig(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	root := &widget.ENode{}
	root.SetWrapperForRoot(root)
	root.SetAttachedForRoot(true)

	c := &widget.ENode{}
	c.Pad = widget.UniformInsets(3)
	c.SetLayout(NewLogicalGridLayout(NewLogicalGrid(NewVerticalSmartGrid()), testLayoutOpts, zap.New(core)))
	root.Append(c)

	assert.Equal(t, image.Pt(6, 6), c.PrefSize(widget.PrefSizeOptions{}))
	c.SetBounds(image.Rect(0, 0, 100, 100))
	assert.True(t, c.IsValid())
	assert.NotZero(t, logs.FilterMessage("logical grid validation failed").Len())
}

func TestLogicalGridLayoutMaxSize(t *testing.T) {
	a := newTestWidget(1, 1)
	a.hints.WeightY = 1
	a.MaxSize = image.Pt(80, 60)
	a.Margin = widget.NewInsets(0, 2, 0, 2)
	b := newTestWidget(1, 1)
	b.hints.WeightY = 1
	_, c := newTestContainer(t, 2, a, b)

	c.SetBounds(image.Rect(0, 0, 500, 400))
	ld, ok := a.LayoutData.(LogicalGridData)
	require.True(t, ok)
	assert.Equal(t, 84, ld.MaxWidth)
	assert.Equal(t, 60, ld.MaxHeight)

	// the cell stops at the max size, margins included
	assert.Equal(t, image.Rect(2, 0, 82, 60), a.Bounds)
	assert.Equal(t, 89, b.Bounds.Min.X)
	assert.Equal(t, 500, b.Bounds.Max.X)
}
