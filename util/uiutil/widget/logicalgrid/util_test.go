package logicalgrid

import (
	"github.com/jmigpin/formlayout/util/uiutil/widget"
)

type testWidget struct {
	widget.ENode
	hints GridData
	gd    GridData
}

func newTestWidget(w, h int) *testWidget {
	tw := &testWidget{hints: NewGridData()}
	tw.hints.W = w
	tw.hints.H = h
	return tw
}

func newTestWidgetAt(x, y, w, h int) *testWidget {
	tw := newTestWidget(w, h)
	tw.hints.X = x
	tw.hints.Y = y
	return tw
}

func (tw *testWidget) GridDataHints() GridData { return tw.hints }
func (tw *testWidget) GridData() GridData      { return tw.gd }
func (tw *testWidget) SetGridData(gd GridData) { tw.gd = gd }

//----------

type testConfig struct {
	widgets []*testWidget
	cols    int
	rows    int
}

func (c *testConfig) GridWidgets() []GridWidget {
	u := []GridWidget{}
	for _, w := range c.widgets {
		if w.IsVisible() {
			u = append(u, w)
		}
	}
	return u
}
func (c *testConfig) GridColumnCount() int { return c.cols }

type testRowsConfig struct {
	testConfig
}

func (c *testRowsConfig) GridRowCount() int { return c.rows }

//----------

type countingGrid struct {
	Grid
	count int
}

func (g *countingGrid) Validate(cfg LogicalGridConfig) error {
	g.count++
	return g.Grid.Validate(cfg)
}
