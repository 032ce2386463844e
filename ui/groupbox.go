package ui

import (
	"github.com/jmigpin/formlayout/util/uiutil/widget"
	"github.com/jmigpin/formlayout/util/uiutil/widget/logicalgrid"
	"go.uber.org/zap"
)

// GroupBox arranges its fields in a logical grid below an optional title. Group boxes can be nested.
type GroupBox struct {
	widget.ENode
	widgetBase
	gridWidget

	Title *Label

	// Switch to one column with labels on top when narrower than the session compact width.
	Responsive bool

	body        *groupBoxBody
	grid        *logicalgrid.LogicalGrid
	fields      []GroupBoxChild
	columnCount int
	rowCount    int
	flow        bool
	compact     bool
}

func NewGroupBox(s *Session) *GroupBox {
	gb := &GroupBox{
		widgetBase:  newWidgetBase(s, TypeGroupBox),
		gridWidget:  newGridWidget(),
		columnCount: 2,
	}
	// nested group boxes span the whole row and are as high as their content
	gb.hints.W = logicalgrid.FullWidth
	gb.hints.UseUIHeight = true

	gb.grid = logicalgrid.NewLogicalGrid(logicalgrid.NewVerticalSmartGrid())
	gb.grid.SetGridConfig(&groupBoxGridConfig{gb: gb})

	gb.Title = NewLabel(s, "")
	gb.Title.SetVisible(false)

	gb.body = &groupBoxBody{}
	gl := logicalgrid.NewLogicalGridLayout(gb.grid, s.Env.gridLayoutOptions(), s.Log.Named("grid"))
	gb.body.SetLayout(gl)

	gb.Append(gb.Title, gb.body)
	gb.SetLayout(&groupBoxLayout{gb: gb})
	return gb
}

//----------

func (gb *GroupBox) SetTitle(text string) {
	gb.Title.SetText(text)
	gb.Title.SetVisible(text != "")
}

// Same as SetTitle.
func (gb *GroupBox) SetLabel(text string) {
	gb.SetTitle(text)
}

func (gb *GroupBox) Grid() *logicalgrid.LogicalGrid {
	return gb.grid
}

func (gb *GroupBox) Body() *widget.EmbedNode {
	return gb.body.Embed()
}

//----------

// Configured column count.
func (gb *GroupBox) ColumnCount() int {
	return gb.columnCount
}

func (gb *GroupBox) SetColumnCount(n int) {
	if n < 1 {
		panic("group box column count must be positive")
	}
	if n == gb.columnCount {
		return
	}
	gb.columnCount = n
	gb.InvalidateLogicalGrid()
}

// Flow boxes fill a column top to bottom before moving to the next one.
func (gb *GroupBox) Flow() bool {
	return gb.flow
}

func (gb *GroupBox) SetFlow(v bool) {
	if gb.flow == v {
		return
	}
	gb.flow = v
	if v {
		gb.grid.SetGrid(logicalgrid.NewVerticalFlowGrid())
	} else {
		gb.grid.SetGrid(logicalgrid.NewVerticalSmartGrid())
	}
	gb.InvalidateLogicalGrid()
}

// Starting row count of a flow box, zero derives it from the fields.
func (gb *GroupBox) SetRowCount(n int) {
	if n < 0 {
		panic("group box row count must not be negative")
	}
	if gb.rowCount == n {
		return
	}
	gb.rowCount = n
	gb.InvalidateLogicalGrid()
}

// Column count used by the grid, one in compact mode.
func (gb *GroupBox) EffectiveColumnCount() int {
	if gb.compact {
		return 1
	}
	return gb.columnCount
}

func (gb *GroupBox) Compact() bool {
	return gb.compact
}

// Updates the compact mode for the given width. Returns true if the mode changed, in which case the grid is dirty and the group box with its fields need a new layout.
func (gb *GroupBox) updateCompact(width int) bool {
	compact := gb.Responsive && width > 0 && width < gb.session.Env.CompactWidth
	if compact == gb.compact {
		return false
	}
	gb.compact = compact
	gb.session.Log.Debug("group box compact mode changed",
		zap.String("id", gb.id),
		zap.Bool("compact", compact),
		zap.Int("width", width))
	gb.grid.SetDirty(true)
	gb.InvalidateLayout(nil)
	gb.body.InvalidateLayout(nil)
	for _, f := range gb.fields {
		f.Embed().InvalidateLayout(nil)
	}
	return true
}

//----------

func (gb *GroupBox) Fields() []GroupBoxChild {
	return append([]GroupBoxChild(nil), gb.fields...)
}

func (gb *GroupBox) AddField(f GroupBoxChild) {
	if f.GroupBox() != nil {
		panic("field already belongs to a group box")
	}
	gb.fields = append(gb.fields, f)
	f.setGroupBox(gb)
	gb.body.Append(f)
	gb.grid.SetDirty(true)
}

func (gb *GroupBox) RemoveField(f GroupBoxChild) {
	for i, u := range gb.fields {
		if u != f {
			continue
		}
		gb.fields = append(gb.fields[:i], gb.fields[i+1:]...)
		f.setGroupBox(nil)
		gb.body.Remove(f)
		gb.grid.SetDirty(true)
		return
	}
	panic("not a field of this group box")
}

// Marks the grid dirty and invalidates the body so the fields are placed again.
func (gb *GroupBox) InvalidateLogicalGrid() {
	gb.grid.SetDirty(true)
	gb.body.InvalidateLayoutTree(true)
}

// Hiding a nested group box removes it from the grid of its parent.
func (gb *GroupBox) SetVisible(v bool) {
	if gb.IsVisible() == v {
		return
	}
	gb.ENode.SetVisible(v)
	gb.invalidateBoxGrid()
}

//----------

type groupBoxBody struct {
	widget.ENode
}

//----------

type groupBoxGridConfig struct {
	gb *GroupBox
}

func (c *groupBoxGridConfig) GridWidgets() []logicalgrid.GridWidget {
	u := []logicalgrid.GridWidget{}
	for _, f := range c.gb.fields {
		if f.Embed().IsVisible() {
			u = append(u, f)
		}
	}
	return u
}

func (c *groupBoxGridConfig) GridColumnCount() int {
	return c.gb.EffectiveColumnCount()
}

func (c *groupBoxGridConfig) GridRowCount() int {
	return c.gb.rowCount
}
