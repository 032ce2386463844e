package logicalgrid

import (
	"image"

	"github.com/jmigpin/formlayout/util/uiutil/widget"
)

const (
	sizeMin = iota
	sizePref
	sizeMax
)

const (
	maxCellSize = 10240
	weightEps   = 1e-6
)

// Column widths, row heights and weights of one layout pass, computed from the grid data of the visible widgets.
type layoutInfo struct {
	opts  LayoutOptions
	comps []*widget.EmbedNode
	cons  []LogicalGridData

	cols, rows int
	width      [][3]int // per column: min, pref, max
	height     [][3]int // per row: min, pref, max
	weightX    []float64
	weightY    []float64
}

// The width hint (content width, zero if unknown) is used to measure widgets that use their own preferred height.
func newLayoutInfo(comps []*widget.EmbedNode, cons []LogicalGridData, opts LayoutOptions, widthHint int) *layoutInfo {
	li := &layoutInfo{opts: opts, comps: comps}
	// modifiable copy
	li.cons = append([]LogicalGridData(nil), cons...)
	if len(comps) == 0 {
		return li
	}

	// eliminate unused rows and columns
	usedCols := map[int]bool{}
	usedRows := map[int]bool{}
	for i := range li.cons {
		gd := &li.cons[i]
		gd.GridX = imax(gd.GridX, 0)
		gd.GridY = imax(gd.GridY, 0)
		gd.GridW = imax(gd.GridW, 1)
		gd.GridH = imax(gd.GridH, 1)
		for x := gd.GridX; x < gd.GridX+gd.GridW; x++ {
			usedCols[x] = true
		}
		for y := gd.GridY; y < gd.GridY+gd.GridH; y++ {
			usedRows[y] = true
		}
	}
	for x := maxKey(usedCols); x >= 0; x-- {
		if !usedCols[x] {
			for i := range li.cons {
				if li.cons[i].GridX > x {
					li.cons[i].GridX--
				}
			}
		}
	}
	for y := maxKey(usedRows); y >= 0; y-- {
		if !usedRows[y] {
			for i := range li.cons {
				if li.cons[i].GridY > y {
					li.cons[i].GridY--
				}
			}
		}
	}

	li.cols = len(usedCols)
	li.rows = len(usedRows)
	li.width = make([][3]int, li.cols)
	li.height = make([][3]int, li.rows)
	li.weightX = make([]float64, li.cols)
	li.weightY = make([]float64, li.rows)
	li.initialize(widthHint)
	return li
}

func (li *layoutInfo) initialize(widthHint int) {
	compSize := make([]image.Point, len(li.comps))
	for i := range li.cons {
		cons := &li.cons[i]
		if cons.GridX >= li.cols {
			cons.GridX = li.cols - 1
		}
		if cons.GridY >= li.rows {
			cons.GridY = li.rows - 1
		}
		if cons.GridX+cons.GridW > li.cols {
			cons.GridW = li.cols - cons.GridX
		}
		if cons.GridY+cons.GridH > li.rows {
			cons.GridH = li.rows - cons.GridY
		}
		if cons.UseUIWidth {
			ps := li.comps[i].PrefSize(widget.PrefSizeOptions{IncludeMargin: true, WidthOnly: !cons.UseUIHeight})
			compSize[i] = ps
		}
		if cons.WidthHint > 0 {
			compSize[i].X = cons.WidthHint
		}
	}
	li.initializeColumns(compSize)

	var colWidths []int
	if widthHint > 0 {
		colWidths = li.layoutSizes(widthHint-imax(0, (li.cols-1)*li.opts.HGap), li.width, li.weightX)
	}
	for i := range li.cons {
		cons := &li.cons[i]
		if cons.UseUIHeight {
			hint := 0
			if colWidths != nil && !cons.UseUIWidth {
				hint = spanSize(colWidths, cons.GridX, cons.GridW, li.opts.HGap)
			}
			ps := li.comps[i].PrefSize(widget.PrefSizeOptions{WidthHint: hint, IncludeMargin: true})
			compSize[i].Y = ps.Y
		}
		if cons.HeightHint > 0 {
			compSize[i].Y = cons.HeightHint
		}
	}
	li.initializeRows(compSize)
}

//----------

func (li *layoutInfo) initializeColumns(compSize []image.Point) {
	prefWidths := make([]int, li.cols)
	maxWidths := newMaxSizes(li.cols)
	fixed := make([]bool, li.cols)
	for i, cons := range li.cons {
		if cons.GridW != 1 {
			continue
		}
		prefw := li.logicalWidth(cons)
		if cons.WidthHint > 0 || cons.UseUIWidth {
			prefw = compSize[i].X
		}
		for j := cons.GridX; j < cons.GridX+cons.GridW && j < li.cols; j++ {
			prefWidths[j] = imax(prefWidths[j], prefw)
			if cons.WeightX == 0 {
				fixed[j] = true
			}
			if cons.MaxWidth > 0 {
				maxWidths[j] = imin(maxWidths[j], cons.MaxWidth)
			}
		}
	}
	for i, cons := range li.cons {
		if cons.GridW <= 1 {
			continue
		}
		span := cons.GridW
		if cons.MaxWidth > 0 {
			spanMaxSizes(maxWidths, cons.GridX, span, cons.MaxWidth, li.opts.HGap)
		}
		spanWidth := 0
		for j := cons.GridX; j < cons.GridX+span && j < li.cols; j++ {
			if !fixed[j] {
				spanWidth += prefWidths[j]
			}
		}
		w := li.logicalWidth(cons)
		if cons.WidthHint > 0 || cons.UseUIWidth {
			w = compSize[i].X
		}
		dist := w - spanWidth - (span-1)*li.opts.HGap
		if dist <= 0 {
			continue
		}
		equal := (dist + spanWidth) / span
		remainder := (dist + spanWidth) % span
		last := -1
		for j := cons.GridX; j < cons.GridX+span && j < li.cols; j++ {
			last = j
			if !fixed[j] {
				prefWidths[j] = imax(equal, prefWidths[j])
			}
			if cons.WeightX == 0 {
				fixed[j] = true
			}
		}
		if last >= 0 {
			prefWidths[last] += remainder
		}
	}

	for i := 0; i < li.cols; i++ {
		prefw := imin(prefWidths[i], maxWidths[i])
		if fixed[i] {
			// min is not zero: fixed columns (ex: labels) must not be truncated
			li.width[i] = [3]int{prefw, prefw, prefw}
		} else {
			li.width[i] = [3]int{0, prefw, maxWidths[i]}
		}
	}

	// averaged column weights, normalized to sum 1
	for i := 0; i < li.cols; i++ {
		if fixed[i] {
			li.weightX[i] = 0
			continue
		}
		sum, n := 0.0, 0
		for _, cons := range li.cons {
			if cons.WeightX > 0 && cons.GridX <= i && i <= cons.GridX+cons.GridW-1 {
				sum += cons.WeightX / float64(cons.GridW)
				n++
			}
		}
		if n > 0 {
			li.weightX[i] = sum / float64(n)
		}
	}
	normalize(li.weightX)
}

func (li *layoutInfo) initializeRows(compSize []image.Point) {
	prefHeights := make([]int, li.rows)
	maxHeights := newMaxSizes(li.rows)
	fixed := make([]bool, li.rows)
	for i, cons := range li.cons {
		if cons.GridH != 1 {
			continue
		}
		prefh := li.logicalHeight(cons)
		if cons.HeightHint > 0 || cons.UseUIHeight {
			prefh = compSize[i].Y
		}
		for j := cons.GridY; j < cons.GridY+cons.GridH && j < li.rows; j++ {
			prefHeights[j] = imax(prefHeights[j], prefh)
			if cons.WeightY == 0 {
				fixed[j] = true
			}
			if cons.MaxHeight > 0 {
				maxHeights[j] = imin(maxHeights[j], cons.MaxHeight)
			}
		}
	}
	for i, cons := range li.cons {
		if cons.GridH <= 1 {
			continue
		}
		span := cons.GridH
		if cons.MaxHeight > 0 {
			spanMaxSizes(maxHeights, cons.GridY, span, cons.MaxHeight, li.opts.VGap)
		}
		spanHeight := 0
		for j := cons.GridY; j < cons.GridY+span && j < li.rows; j++ {
			spanHeight += prefHeights[j]
		}
		h := li.logicalHeight(cons)
		if cons.HeightHint > 0 || cons.UseUIHeight {
			h = compSize[i].Y
		}
		dist := h - spanHeight - (span-1)*li.opts.VGap
		if dist <= 0 {
			continue
		}
		equal := (dist + spanHeight) / span
		remainder := (dist + spanHeight) % span
		last := -1
		for j := cons.GridY; j < cons.GridY+span && j < li.rows; j++ {
			last = j
			prefHeights[j] = imax(equal, prefHeights[j])
			if cons.WeightY == 0 {
				fixed[j] = true
			}
		}
		if last >= 0 {
			prefHeights[last] += remainder
		}
	}

	for i := 0; i < li.rows; i++ {
		prefh := imin(prefHeights[i], maxHeights[i])
		if fixed[i] {
			li.height[i] = [3]int{prefh, prefh, prefh}
		} else {
			li.height[i] = [3]int{0, prefh, maxHeights[i]}
		}
	}

	for i := 0; i < li.rows; i++ {
		if fixed[i] {
			li.weightY[i] = 0
			continue
		}
		sum, n := 0.0, 0
		for _, cons := range li.cons {
			if cons.WeightY > 0 && cons.GridY <= i && i <= cons.GridY+cons.GridH-1 {
				sum += cons.WeightY / float64(cons.GridH)
				n++
			}
		}
		if n > 0 {
			li.weightY[i] = sum / float64(n)
		}
	}
	normalize(li.weightY)
}

//----------

func (li *layoutInfo) logicalWidth(cons LogicalGridData) int {
	return li.opts.ColumnWidth*cons.GridW + li.opts.HGap*imax(0, cons.GridW-1)
}

func (li *layoutInfo) logicalHeight(cons LogicalGridData) int {
	return li.opts.RowHeight*cons.GridH + li.opts.VGap*imax(0, cons.GridH-1)
}

//----------

// Cell bounds (rows of columns) fitted to the parent size. Gaps are not part of the cells.
func (li *layoutInfo) layoutCellBounds(size image.Point, insets widget.Insets) [][]image.Rectangle {
	w := li.layoutSizes(size.X-insets.Horizontal()-imax(0, (li.cols-1)*li.opts.HGap), li.width, li.weightX)
	h := li.layoutSizes(size.Y-insets.Vertical()-imax(0, (li.rows-1)*li.opts.VGap), li.height, li.weightY)

	cells := make([][]image.Rectangle, li.rows)
	y := insets.Top
	for r := range cells {
		cells[r] = make([]image.Rectangle, li.cols)
		x := insets.Left
		for c := range cells[r] {
			cells[r][c] = image.Rect(x, y, x+w[c], y+h[r])
			x += w[c] + li.opts.HGap
		}
		y += h[r] + li.opts.VGap
	}
	return cells
}

// Grid size from the logical (preferred) column widths and row heights.
func (li *layoutInfo) prefSize(insets widget.Insets) image.Point {
	return gridDimension(extractSizes(li.width, sizePref), extractSizes(li.height, sizePref), insets, li.opts.HGap, li.opts.VGap)
}

// Distributes the difference between the target and the preferred sizes by weight, one pixel at a time, within the min/max sizes.
func (li *layoutInfo) layoutSizes(target int, sizes [][3]int, weights []float64) []int {
	out := make([]int, len(sizes))
	if target <= 0 {
		return out
	}
	sumSize := 0
	tmpWeight := make([]float64, len(weights))
	sumWeight := 0.0
	for i := range sizes {
		out[i] = sizes[i][sizePref]
		sumSize += out[i]
		tmpWeight[i] = weights[i]
		// zero weight grows anyway if the size is not fixed
		if tmpWeight[i] < weightEps {
			if sizes[i][sizeMax] > sizes[i][sizeMin] {
				tmpWeight[i] = 1
			} else {
				tmpWeight[i] = 0
			}
		}
		sumWeight += tmpWeight[i]
	}
	if sumWeight > 0 {
		for i := range tmpWeight {
			tmpWeight[i] /= sumWeight
		}
	}

	delta := target - sumSize
	acc := make([]float64, len(tmpWeight))
	if delta > 0 {
		for hasTargets := true; delta > 0 && hasTargets; {
			hasTargets = false
			for i := 0; i < len(out) && delta > 0; i++ {
				if tmpWeight[i] > 0 && out[i] < sizes[i][sizeMax] {
					hasTargets = true
					acc[i] += tmpWeight[i]
					if acc[i] > 0 {
						acc[i]--
						out[i]++
						delta--
					}
				}
			}
		}
	} else if delta < 0 {
		for hasTargets := true; delta < 0 && hasTargets; {
			hasTargets = false
			for i := 0; i < len(out) && delta < 0; i++ {
				if tmpWeight[i] > 0 && out[i] > sizes[i][sizeMin] {
					hasTargets = true
					acc[i] += tmpWeight[i]
					if acc[i] > 0 {
						acc[i]--
						out[i]--
						delta++
					}
				}
			}
		}
	}
	return out
}

//----------

func gridDimension(colWidths, rowHeights []int, insets widget.Insets, hgap, vgap int) image.Point {
	var p image.Point
	if len(colWidths) > 0 {
		for _, w := range colWidths {
			p.X += w
		}
		p.X += (len(colWidths)-1)*hgap + insets.Horizontal()
	}
	if len(rowHeights) > 0 {
		for _, h := range rowHeights {
			p.Y += h
		}
		p.Y += (len(rowHeights)-1)*vgap + insets.Vertical()
	}
	return p
}

func newMaxSizes(n int) []int {
	u := make([]int, n)
	for i := range u {
		u[i] = maxCellSize
	}
	return u
}

// Splits the max size of a spanning cell (gaps excluded) over its columns or rows, the remainder goes to the last one. Sizes already lower are kept.
func spanMaxSizes(maxs []int, start, span, size, gap int) {
	avail := imax(0, size-(span-1)*gap)
	equal, remainder := avail/span, avail%span
	last := -1
	for j := start; j < start+span && j < len(maxs); j++ {
		maxs[j] = imin(maxs[j], equal)
		last = j
	}
	if last >= 0 {
		maxs[last] += remainder
	}
}

func extractSizes(sizes [][3]int, k int) []int {
	u := make([]int, len(sizes))
	for i := range sizes {
		u[i] = sizes[i][k]
	}
	return u
}

func spanSize(sizes []int, start, n, gap int) int {
	s := 0
	for j := start; j < start+n && j < len(sizes); j++ {
		s += sizes[j]
	}
	return s + imax(0, n-1)*gap
}

func normalize(w []float64) {
	sum := 0.0
	for _, v := range w {
		sum += v
	}
	if sum >= weightEps {
		for i := range w {
			w[i] /= sum
		}
	}
}

func maxKey(m map[int]bool) int {
	max := -1
	for k := range m {
		max = imax(max, k)
	}
	return max
}
