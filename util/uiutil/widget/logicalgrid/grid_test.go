package logicalgrid

import (
	"image"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positions(ws []*testWidget) []image.Point {
	u := []image.Point{}
	for _, w := range ws {
		u = append(u, image.Point{w.gd.X, w.gd.Y})
	}
	return u
}

//----------

func TestSmartGrid1(t *testing.T) {
	cfg := &testConfig{cols: 2}
	for i := 0; i < 3; i++ {
		cfg.widgets = append(cfg.widgets, newTestWidget(1, 1))
	}
	g := NewVerticalSmartGrid()
	require.NoError(t, g.Validate(cfg))

	want := []image.Point{{0, 0}, {1, 0}, {0, 1}}
	if diff := cmp.Diff(want, positions(cfg.widgets)); diff != "" {
		t.Fatal(diff)
	}
	assert.Equal(t, 2, g.GridRows())
	assert.Equal(t, 2, g.GridColumns())
}

func TestSmartGridSpanWiderThanColumns(t *testing.T) {
	w := newTestWidget(3, 1)
	cfg := &testConfig{cols: 2, widgets: []*testWidget{w}}
	g := NewVerticalSmartGrid()
	require.NoError(t, g.Validate(cfg))
	assert.Equal(t, image.Rect(0, 0, 2, 1), w.gd.Rect())
	assert.Equal(t, 1, g.GridRows())

	// deterministic
	require.NoError(t, g.Validate(cfg))
	assert.Equal(t, image.Rect(0, 0, 2, 1), w.gd.Rect())
	assert.Equal(t, 1, g.GridRows())
}

func TestSmartGridFullWidth(t *testing.T) {
	w1 := newTestWidget(1, 1)
	w2 := newTestWidget(FullWidth, 1)
	cfg := &testConfig{cols: 3, widgets: []*testWidget{w1, w2}}
	g := NewVerticalSmartGrid()
	require.NoError(t, g.Validate(cfg))
	assert.Equal(t, image.Rect(0, 0, 1, 1), w1.gd.Rect())
	assert.Equal(t, image.Rect(0, 1, 3, 2), w2.gd.Rect())
	assert.Equal(t, 2, g.GridRows())
	// hints are not written
	assert.Equal(t, FullWidth, w2.hints.W)
	assert.Equal(t, -1, w2.hints.X)
}

func TestSmartGridEmpty(t *testing.T) {
	cfg := &testConfig{cols: 2}
	g := NewVerticalSmartGrid()
	require.NoError(t, g.Validate(cfg))
	assert.Equal(t, 0, g.GridRows())
}

func TestSmartGridNilConfig(t *testing.T) {
	g := NewVerticalSmartGrid()
	assert.ErrorIs(t, g.Validate(nil), ErrNoGridConfig)
}

func TestSmartGridSpans(t *testing.T) {
	// a b b
	// a c .
	a := newTestWidget(1, 2)
	b := newTestWidget(2, 1)
	c := newTestWidget(1, 1)
	cfg := &testConfig{cols: 3, widgets: []*testWidget{a, b, c}}
	g := NewVerticalSmartGrid()
	require.NoError(t, g.Validate(cfg))
	assert.Equal(t, image.Rect(0, 0, 1, 2), a.gd.Rect())
	assert.Equal(t, image.Rect(1, 0, 3, 1), b.gd.Rect())
	assert.Equal(t, image.Rect(1, 1, 2, 2), c.gd.Rect())
	assert.Equal(t, 2, g.GridRows())
}

func TestSmartGridGrowsRows(t *testing.T) {
	// b leaves a hole that c does not fit in
	a := newTestWidget(2, 1)
	b := newTestWidget(1, 1)
	c := newTestWidget(2, 1)
	cfg := &testConfig{cols: 2, widgets: []*testWidget{a, b, c}}
	g := NewVerticalSmartGrid()
	require.NoError(t, g.Validate(cfg))
	assert.Equal(t, image.Rect(0, 0, 2, 1), a.gd.Rect())
	assert.Equal(t, image.Rect(0, 1, 1, 2), b.gd.Rect())
	assert.Equal(t, image.Rect(0, 2, 2, 3), c.gd.Rect())
	assert.Equal(t, 3, g.GridRows())
}

func TestSmartGridExplicitPosition(t *testing.T) {
	a := newTestWidget(1, 1)
	b := newTestWidgetAt(1, 2, 1, 1)
	cfg := &testConfig{cols: 2, widgets: []*testWidget{a, b}}
	g := NewVerticalSmartGrid()
	require.NoError(t, g.Validate(cfg))
	assert.Equal(t, image.Point{0, 0}, a.gd.Rect().Min)
	assert.Equal(t, image.Point{1, 2}, b.gd.Rect().Min)
	assert.Equal(t, 3, g.GridRows())
}

func TestSmartGridExplicitConflict(t *testing.T) {
	// b wants the cell already taken by a: ends auto placed
	a := newTestWidget(1, 1)
	b := newTestWidgetAt(0, 0, 1, 1)
	cfg := &testConfig{cols: 2, widgets: []*testWidget{a, b}}
	g := NewVerticalSmartGrid()
	require.NoError(t, g.Validate(cfg))
	assert.Equal(t, image.Point{0, 0}, a.gd.Rect().Min)
	assert.Equal(t, image.Point{1, 0}, b.gd.Rect().Min)
	// rows bound: sum of heights plus lowest explicit position
	assert.Equal(t, 3, g.GridRows())
}

func TestSmartGridWeights(t *testing.T) {
	a := newTestWidget(2, 1)
	b := newTestWidget(1, 3)
	c := newTestWidget(1, 1)
	c.hints.WeightX = 0
	c.hints.WeightY = 0.5
	cfg := &testConfig{cols: 2, widgets: []*testWidget{a, b, c}}
	g := NewVerticalSmartGrid()
	require.NoError(t, g.Validate(cfg))
	assert.Equal(t, 2.0, a.gd.WeightX)
	assert.Equal(t, 0.0, a.gd.WeightY)
	assert.Equal(t, 1.0, b.gd.WeightX)
	assert.Equal(t, 3.0, b.gd.WeightY)
	assert.Equal(t, 0.0, c.gd.WeightX)
	assert.Equal(t, 0.5, c.gd.WeightY)
}

func TestSmartGridInvalidSpan(t *testing.T) {
	w := newTestWidget(1, 0)
	cfg := &testConfig{cols: 2, widgets: []*testWidget{w}}
	g := NewVerticalSmartGrid()
	require.Panics(t, func() { _ = g.Validate(cfg) })
}

func TestSmartGridHiddenWidget(t *testing.T) {
	a := newTestWidget(1, 1)
	b := newTestWidget(1, 1)
	c := newTestWidget(1, 1)
	b.SetVisible(false)
	cfg := &testConfig{cols: 2, widgets: []*testWidget{a, b, c}}
	g := NewVerticalSmartGrid()
	require.NoError(t, g.Validate(cfg))
	assert.Equal(t, image.Point{1, 0}, c.gd.Rect().Min)
	assert.Equal(t, 1, g.GridRows())
}

//----------

func TestFlowGrid1(t *testing.T) {
	cfg := &testConfig{cols: 2}
	for i := 0; i < 3; i++ {
		cfg.widgets = append(cfg.widgets, newTestWidget(1, 1))
	}
	g := NewVerticalFlowGrid()
	require.NoError(t, g.Validate(cfg))
	want := []image.Point{{0, 0}, {0, 1}, {1, 0}}
	if diff := cmp.Diff(want, positions(cfg.widgets)); diff != "" {
		t.Fatal(diff)
	}
	assert.Equal(t, 2, g.GridRows())
}

func TestFlowGridRowCount(t *testing.T) {
	cfg := &testRowsConfig{testConfig{cols: 2, rows: 3}}
	for i := 0; i < 3; i++ {
		cfg.widgets = append(cfg.widgets, newTestWidget(1, 1))
	}
	g := NewVerticalFlowGrid()
	require.NoError(t, g.Validate(cfg))
	want := []image.Point{{0, 0}, {0, 1}, {0, 2}}
	if diff := cmp.Diff(want, positions(cfg.widgets)); diff != "" {
		t.Fatal(diff)
	}
	assert.Equal(t, 3, g.GridRows())
}

//----------

func TestGridsNonOverlapAndBounds(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	grids := map[string]func() Grid{
		"smart": func() Grid { return NewVerticalSmartGrid() },
		"flow":  func() Grid { return NewVerticalFlowGrid() },
	}
	for name, newGrid := range grids {
		for k := 0; k < 200; k++ {
			cfg := &testConfig{cols: 1 + rnd.Intn(4)}
			n := rnd.Intn(10)
			for i := 0; i < n; i++ {
				var w *testWidget
				if rnd.Intn(5) == 0 {
					w = newTestWidgetAt(rnd.Intn(4), rnd.Intn(4), 1+rnd.Intn(2), 1+rnd.Intn(2))
				} else {
					w = newTestWidget(rnd.Intn(4), 1+rnd.Intn(3))
				}
				cfg.widgets = append(cfg.widgets, w)
			}

			g := newGrid()
			require.NoError(t, g.Validate(cfg))
			bounds := image.Rect(0, 0, g.GridColumns(), g.GridRows())
			for i, a := range cfg.widgets {
				ra := a.gd.Rect()
				if !ra.In(bounds) {
					t.Fatalf("%v: %v: out of bounds: %v, %v", name, k, ra, bounds)
				}
				for _, b := range cfg.widgets[i+1:] {
					if ra.Overlaps(b.gd.Rect()) {
						t.Fatalf("%v: %v: overlap: %v, %v", name, k, ra, b.gd.Rect())
					}
				}
			}
		}
	}
}

//----------

func TestGridMatrixString(t *testing.T) {
	m := newGridMatrix(3, 2)
	m.reserve(0, 0, 2, 1, 0)
	m.reserve(2, 0, 1, 2, 1)
	s := m.String()
	t.Log("\n" + s)
	assert.Equal(t, " 0  0  1\n .  .  1\n", s)
}
