package logicalgrid

import (
	"fmt"
	"image"
)

// Width sentinel: span all the columns of the grid.
const FullWidth = 0

// Alignments (-1 is also "fill" when the fill flags are set).
const (
	AlignStart  = -1
	AlignCenter = 0
	AlignEnd    = 1
)

// GridData is used both as the declared intent of a widget (hints) and as the placement resolved by a grid (x,y assigned, weights derived). The grid never writes the hints.
type GridData struct {
	X, Y int // -1: unassigned, let the grid choose
	W, H int // span in cells; W can be FullWidth

	WeightX, WeightY float64 // -1: derive from the span

	UseUIWidth, UseUIHeight bool // use the widget preferred size instead of the logical cell size

	WidthInPixel, HeightInPixel int // 0: unset

	HorizontalAlignment, VerticalAlignment int

	FillHorizontal, FillVertical bool
}

func NewGridData() GridData {
	return GridData{
		X:                   -1,
		Y:                   -1,
		W:                   1,
		H:                   1,
		WeightX:             -1,
		WeightY:             -1,
		HorizontalAlignment: AlignStart,
		VerticalAlignment:   AlignStart,
		FillHorizontal:      true,
		FillVertical:        true,
	}
}

// Cells covered by the grid data (only meaningful after placement).
func (gd GridData) Rect() image.Rectangle {
	return image.Rect(gd.X, gd.Y, gd.X+gd.W, gd.Y+gd.H)
}

func (gd GridData) hasPosition() bool {
	return gd.X >= 0 && gd.Y >= 0
}

func (gd GridData) Validate() {
	if gd.W < 0 || gd.H < 1 {
		panic(fmt.Sprintf("invalid grid data span: w=%v, h=%v", gd.W, gd.H))
	}
}

func (gd GridData) String() string {
	return fmt.Sprintf("{x=%v y=%v w=%v h=%v wx=%v wy=%v}", gd.X, gd.Y, gd.W, gd.H, gd.WeightX, gd.WeightY)
}

//----------

// Copy of the widget hints with the width resolved against the column count. Spans wider than the grid are clamped to the column count.
func CreateFromHints(w GridWidget, gridColumnCount int) GridData {
	gd := w.GridDataHints()
	gd.Validate()
	if gd.W == FullWidth || gd.W > gridColumnCount {
		gd.W = gridColumnCount
	}
	return gd
}

// Weights left at -1 are derived from the span: horizontally proportional to the width, vertically only multi-row widgets grow.
func resolveWeights(gd *GridData) {
	if gd.WeightX < 0 {
		gd.WeightX = float64(gd.W)
	}
	if gd.WeightY < 0 {
		if gd.H >= 2 {
			gd.WeightY = float64(gd.H)
		} else {
			gd.WeightY = 0
		}
	}
}
