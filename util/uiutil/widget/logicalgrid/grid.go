package logicalgrid

import (
	"errors"
)

var ErrNoGridConfig = errors.New("logicalgrid: no grid config")

// Grid is a placement strategy: it assigns a position to every widget of the config and reports the grid dimension.
type Grid interface {
	Validate(cfg LogicalGridConfig) error
	GridRows() int
	GridColumns() int
}

//----------

// Placement shared by the grid strategies. Widgets are walked in declaration order: explicit positions are reserved in place, the others take the first free position in scan order. A failed pass grows the row count by one.
type abstractGrid struct {
	order scanOrder
	rows  int
	cols  int
}

func (g *abstractGrid) GridRows() int    { return g.rows }
func (g *abstractGrid) GridColumns() int { return g.cols }

func (g *abstractGrid) validate(cfg LogicalGridConfig, startRows int) error {
	if cfg == nil {
		return ErrNoGridConfig
	}
	widgets := cfg.GridWidgets()
	cols := cfg.GridColumnCount()
	if cols < 1 {
		cols = 1
	}

	datas := make([]GridData, len(widgets))
	for i, w := range widgets {
		datas[i] = CreateFromHints(w, cols)
	}

	g.cols = cols
	if len(datas) == 0 {
		g.rows = 0
		return nil
	}

	rows := imax(startRows, estimateRows(datas, cols))
	bound := rowsBound(datas)
	for ; ; rows++ {
		// past the bound, only conflicting explicit positions can make a pass fail
		lenient := rows >= bound
		placed, ok := place(datas, cols, rows, g.order, lenient)
		if !ok {
			if lenient {
				// unreachable: auto placement below all explicit positions always fits
				panic("logicalgrid: placement failed past the rows bound")
			}
			continue
		}
		for i, w := range widgets {
			resolveWeights(&placed[i])
			w.SetGridData(placed[i])
		}
		g.rows = rows
		return nil
	}
}

//----------

func place(datas []GridData, cols, rows int, order scanOrder, lenient bool) ([]GridData, bool) {
	m := newGridMatrix(cols, rows)
	out := make([]GridData, len(datas))
	for i, gd := range datas {
		if gd.hasPosition() {
			if m.fits(gd.X, gd.Y, gd.W, gd.H) {
				m.reserve(gd.X, gd.Y, gd.W, gd.H, i)
				out[i] = gd
				continue
			}
			if !lenient {
				return nil, false
			}
		}
		x, y, ok := m.nextFree(gd.W, gd.H, order)
		if !ok {
			return nil, false
		}
		m.reserve(x, y, gd.W, gd.H, i)
		gd.X, gd.Y = x, y
		out[i] = gd
	}
	return out, true
}

// Minimum row count able to hold all the cells.
func estimateRows(datas []GridData, cols int) int {
	cells := 0
	for _, gd := range datas {
		cells += gd.W * gd.H
	}
	return (cells + cols - 1) / cols
}

// Rows needed to stack every widget below the lowest explicit position.
func rowsBound(datas []GridData) int {
	sumH, maxExplicit := 0, 0
	for _, gd := range datas {
		sumH += gd.H
		if gd.hasPosition() {
			maxExplicit = imax(maxExplicit, gd.Y+gd.H)
		}
	}
	return sumH + maxExplicit
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}
