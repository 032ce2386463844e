package logicalgrid

import (
	"fmt"
	"strings"
)

type scanOrder int

const (
	rowMajor    scanOrder = iota // left-to-right, then next row
	columnMajor                  // top-to-bottom, then next column
)

// Transient occupancy table of one placement pass. Cells hold the index of the occupying widget, or -1.
type gridMatrix struct {
	cols, rows int
	cells      []int
}

func newGridMatrix(cols, rows int) *gridMatrix {
	m := &gridMatrix{cols: cols, rows: rows}
	m.cells = make([]int, cols*rows)
	for i := range m.cells {
		m.cells[i] = -1
	}
	return m
}

func (m *gridMatrix) at(x, y int) int {
	return m.cells[y*m.cols+x]
}

// Rectangle inside bounds and all cells free.
func (m *gridMatrix) fits(x, y, w, h int) bool {
	if x < 0 || y < 0 || w < 1 || h < 1 || x+w > m.cols || y+h > m.rows {
		return false
	}
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			if m.at(i, j) >= 0 {
				return false
			}
		}
	}
	return true
}

func (m *gridMatrix) reserve(x, y, w, h, index int) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			m.cells[j*m.cols+i] = index
		}
	}
}

// First position (in scan order) where a w×h rectangle fits.
func (m *gridMatrix) nextFree(w, h int, order scanOrder) (int, int, bool) {
	switch order {
	case columnMajor:
		for x := 0; x+w <= m.cols; x++ {
			for y := 0; y+h <= m.rows; y++ {
				if m.fits(x, y, w, h) {
					return x, y, true
				}
			}
		}
	default:
		for y := 0; y+h <= m.rows; y++ {
			for x := 0; x+w <= m.cols; x++ {
				if m.fits(x, y, w, h) {
					return x, y, true
				}
			}
		}
	}
	return 0, 0, false
}

func (m *gridMatrix) String() string {
	sb := &strings.Builder{}
	for y := 0; y < m.rows; y++ {
		for x := 0; x < m.cols; x++ {
			if x > 0 {
				sb.WriteString(" ")
			}
			if v := m.at(x, y); v < 0 {
				sb.WriteString(" .")
			} else {
				fmt.Fprintf(sb, "%2d", v)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
