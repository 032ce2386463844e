package logicalgrid

import (
	"image"

	"github.com/jmigpin/formlayout/util/uiutil/widget"
	"go.uber.org/zap"
)

// Constraints of one widget in a layout pass, derived from its resolved grid data.
type LogicalGridData struct {
	GridX, GridY, GridW, GridH int
	WeightX, WeightY           float64
	UseUIWidth, UseUIHeight    bool
	WidthHint, HeightHint      int // pixel overrides
	MaxWidth, MaxHeight        int // cell max sizes, zero for none
	HorizontalAlignment        int
	VerticalAlignment          int
	FillHorizontal             bool
	FillVertical               bool
}

func NewLogicalGridData(gd GridData) LogicalGridData {
	return LogicalGridData{
		GridX:               gd.X,
		GridY:               gd.Y,
		GridW:               gd.W,
		GridH:               gd.H,
		WeightX:             gd.WeightX,
		WeightY:             gd.WeightY,
		UseUIWidth:          gd.UseUIWidth,
		UseUIHeight:         gd.UseUIHeight,
		WidthHint:           gd.WidthInPixel,
		HeightHint:          gd.HeightInPixel,
		HorizontalAlignment: gd.HorizontalAlignment,
		VerticalAlignment:   gd.VerticalAlignment,
		FillHorizontal:      gd.FillHorizontal,
		FillVertical:        gd.FillVertical,
	}
}

//----------

type LayoutOptions struct {
	HGap, VGap  int
	ColumnWidth int // logical width of one column
	RowHeight   int // logical height of one row
	MinWidth    int // minimum preferred width, zero for none
}

//----------

// LogicalGridLayout positions the widgets of a logical grid. The node using it must be the container of the grid widgets.
type LogicalGridLayout struct {
	widget.AbstractLayout
	Grid *LogicalGrid
	Opts LayoutOptions

	log  *zap.Logger
	info *layoutInfo
}

func NewLogicalGridLayout(grid *LogicalGrid, opts LayoutOptions, log *zap.Logger) *LogicalGridLayout {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogicalGridLayout{Grid: grid, Opts: opts, log: log}
}

// Validates the grid and builds the layout info. Returns false if there is nothing to lay out.
func (l *LogicalGridLayout) validateLayout(en *widget.EmbedNode, widthHint int) bool {
	l.info = nil
	if err := l.Grid.Validate(); err != nil {
		l.log.Warn("logical grid validation failed", zap.Error(err))
		return false
	}

	comps := []*widget.EmbedNode{}
	cons := []LogicalGridData{}
	for _, w := range l.Grid.GridConfig().GridWidgets() {
		n, ok := w.(widget.Node)
		if !ok {
			l.log.Debug("grid widget is not a node, skipping")
			continue
		}
		e := n.Embed()
		if !e.IsVisible() || e.Parent != en {
			continue
		}
		lgd := NewLogicalGridData(w.GridData())
		lgd.MaxWidth, lgd.MaxHeight = cellMaxSize(e)
		e.LayoutData = lgd
		comps = append(comps, e)
		cons = append(cons, lgd)
	}
	l.info = newLayoutInfo(comps, cons, l.Opts, widthHint)
	l.log.Debug("logical grid layout validated",
		zap.Int("rows", l.info.rows),
		zap.Int("cols", l.info.cols),
		zap.Int("widgets", len(comps)))
	return true
}

func (l *LogicalGridLayout) Layout(en *widget.EmbedNode) {
	size := en.AvailableSize()
	insets := en.Insets()
	if !l.validateLayout(en, size.X-insets.Horizontal()) {
		return
	}
	if len(l.info.comps) == 0 {
		return
	}
	cells := l.info.layoutCellBounds(size, insets)
	for i, c := range l.info.comps {
		cons := l.info.cons[i]
		r0 := cells[cons.GridY][cons.GridX]
		r1 := cells[cons.GridY+cons.GridH-1][cons.GridX+cons.GridW-1]
		r := r0.Union(r1)
		r = alignInCell(c, cons, r)
		c.SetBounds(c.Margins().Shrink(r))
	}
}

// Max size of the node plus its margins, zero on the axes without a max.
func cellMaxSize(e *widget.EmbedNode) (int, int) {
	w, h := 0, 0
	if e.MaxSize.X > 0 {
		w = e.MaxSize.X + e.Margin.Horizontal()
	}
	if e.MaxSize.Y > 0 {
		h = e.MaxSize.Y + e.Margin.Vertical()
	}
	return w, h
}

// Shrinks the cell to the preferred size of the widget on the axes that don't fill.
func alignInCell(c *widget.EmbedNode, cons LogicalGridData, r image.Rectangle) image.Rectangle {
	if cons.FillHorizontal && cons.FillVertical {
		return r
	}
	opts := widget.PrefSizeOptions{IncludeMargin: true}
	if cons.FillHorizontal {
		opts.WidthHint = r.Dx()
	}
	ps := c.PrefSize(opts)
	if !cons.FillHorizontal && ps.X < r.Dx() {
		delta := r.Dx() - ps.X
		r.Max.X = r.Min.X + ps.X
		r = r.Add(image.Point{alignOffset(delta, cons.HorizontalAlignment), 0})
	}
	if !cons.FillVertical && ps.Y < r.Dy() {
		delta := r.Dy() - ps.Y
		r.Max.Y = r.Min.Y + ps.Y
		r = r.Add(image.Point{0, alignOffset(delta, cons.VerticalAlignment)})
	}
	return r
}

func alignOffset(delta, align int) int {
	switch {
	case align == AlignCenter:
		return delta / 2
	case align > 0:
		return delta
	}
	return 0
}

func (l *LogicalGridLayout) PreferredLayoutSize(en *widget.EmbedNode, opts widget.PrefSizeOptions) image.Point {
	insets := en.Insets()
	if !l.validateLayout(en, opts.WidthHint) || len(l.info.comps) == 0 {
		return insets.Size()
	}
	ps := l.info.prefSize(insets)
	ps.X = imax(ps.X, l.Opts.MinWidth)
	return ps
}
