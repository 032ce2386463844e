package logicalgrid

// VerticalSmartGrid fills the rows left to right, top to bottom, using the smallest row count that holds every widget.
type VerticalSmartGrid struct {
	abstractGrid
}

func NewVerticalSmartGrid() *VerticalSmartGrid {
	return &VerticalSmartGrid{abstractGrid{order: rowMajor}}
}

func (g *VerticalSmartGrid) Validate(cfg LogicalGridConfig) error {
	return g.validate(cfg, 0)
}
