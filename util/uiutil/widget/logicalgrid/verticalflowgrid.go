package logicalgrid

// VerticalFlowGrid fills a column top to bottom before moving to the next one. Configs implementing GridRowCounter set the starting row count.
type VerticalFlowGrid struct {
	abstractGrid
}

func NewVerticalFlowGrid() *VerticalFlowGrid {
	return &VerticalFlowGrid{abstractGrid{order: columnMajor}}
}

func (g *VerticalFlowGrid) Validate(cfg LogicalGridConfig) error {
	start := 0
	if rc, ok := cfg.(GridRowCounter); ok {
		start = rc.GridRowCount()
	}
	return g.validate(cfg, start)
}
