package logicalgrid

// GridWidget is a participant of a logical grid. The grid reads the hints and writes the resolved grid data.
type GridWidget interface {
	GridDataHints() GridData
	GridData() GridData
	SetGridData(GridData)
}

// LogicalGridConfig is implemented by the grid owner (ex: a group box). Values are queried on every grid validation and may change between validations.
type LogicalGridConfig interface {
	// ordered, only the widgets taking part in the grid (ex: visible)
	GridWidgets() []GridWidget
	// positive
	GridColumnCount() int
}

// Optionally implemented by a config with a fixed row count.
type GridRowCounter interface {
	GridRowCount() int
}
