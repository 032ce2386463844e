package logicalgrid

// LogicalGrid runs the placement strategy only when dirty. Repeated validations during a burst of changes place the widgets once.
type LogicalGrid struct {
	grid       Grid
	gridConfig LogicalGridConfig
	dirty      bool
}

func NewLogicalGrid(g Grid) *LogicalGrid {
	return &LogicalGrid{grid: g, dirty: true}
}

// Replaces the placement strategy.
func (lg *LogicalGrid) SetGrid(g Grid) {
	lg.grid = g
	lg.SetDirty(true)
}

func (lg *LogicalGrid) GridConfig() LogicalGridConfig {
	return lg.gridConfig
}

func (lg *LogicalGrid) SetGridConfig(cfg LogicalGridConfig) {
	lg.gridConfig = cfg
	lg.SetDirty(true)
}

func (lg *LogicalGrid) Dirty() bool {
	return lg.dirty
}

func (lg *LogicalGrid) SetDirty(v bool) {
	lg.dirty = v
}

func (lg *LogicalGrid) Validate() error {
	if !lg.dirty {
		return nil
	}
	if lg.gridConfig == nil {
		return ErrNoGridConfig
	}
	if err := lg.grid.Validate(lg.gridConfig); err != nil {
		return err
	}
	lg.dirty = false
	return nil
}

func (lg *LogicalGrid) GridRows() int {
	return lg.grid.GridRows()
}

func (lg *LogicalGrid) GridColumns() int {
	return lg.grid.GridColumns()
}
