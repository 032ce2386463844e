package widget

import (
	"image"
)

// Lays out the children in a row (or column with YAxis). Flex children share the remaining space, fill children take the remaining space only when there are no flex children.
type BoxLayout struct {
	AbstractLayout
	YAxis bool

	flex map[*EmbedNode]XYAxisBoolPair // used in measuring+layout, has priority over fill
	fill map[*EmbedNode]XYAxisBoolPair // used only in layout
}

func NewBoxLayout() *BoxLayout {
	bl := &BoxLayout{
		flex: make(map[*EmbedNode]XYAxisBoolPair),
		fill: make(map[*EmbedNode]XYAxisBoolPair),
	}
	return bl
}

// available size when measuring without hints
const unboundedSize = 1 << 20

// Sizes derived from the unbounded size are not passed to the children as hints.
func sizeHint(v int) int {
	if v > unboundedSize/2 {
		return 0
	}
	return v
}

func (bl *BoxLayout) PreferredLayoutSize(en *EmbedNode, opts PrefSizeOptions) image.Point {
	hint := image.Point{opts.WidthHint, opts.HeightHint}
	if hint.X <= 0 {
		hint.X = unboundedSize
	}
	if hint.Y <= 0 {
		hint.Y = unboundedSize
	}
	bounds := bl.childsBounds(en, hint, true)
	xya := &XYAxis{bl.YAxis}
	var max image.Point
	for _, b := range bounds {
		s := b.Size()
		size := xya.Point(&s)
		max.X += size.X
		if size.Y > max.Y {
			max.Y = size.Y
		}
	}
	return xya.Point(&max).Add(en.Insets().Size())
}

func (bl *BoxLayout) Layout(en *EmbedNode) {
	r := en.Insets().Shrink(image.Rectangle{Max: en.AvailableSize()})
	bounds := bl.childsBounds(en, r.Size(), false)

	en.Iterate2(func(c *EmbedNode) {
		b, ok := bounds[c]
		if !ok {
			return
		}
		b = b.Add(r.Min).Intersect(r)
		c.SetBounds(c.Margins().Shrink(b))
	})
}

func (bl *BoxLayout) childsBounds(en *EmbedNode, max image.Point, measure bool) map[*EmbedNode]image.Rectangle {
	xya := &XYAxis{bl.YAxis}
	max2 := xya.Point(&max)
	sizes := make(map[*EmbedNode]image.Point, en.ChildsLen())

	childs := []*EmbedNode{}
	en.Iterate2(func(c *EmbedNode) {
		if c.IsVisible() {
			childs = append(childs, c)
		}
	})

	// count flex/fill
	nFlexX := 0
	nFillX := 0
	var lastFlexXNode, lastFillXNode *EmbedNode
	for _, child := range childs {
		bp := xya.BoolPair(bl.flex[child])
		if bp.X {
			nFlexX++
			lastFlexXNode = child
		}
		if !measure {
			bp := xya.BoolPair(bl.fill[child])
			if bp.X {
				nFillX++
				lastFillXNode = child
			}
		}
	}

	// x fills are only considered if there are no x flexes (priority for flex)
	// without a main axis hint, flex childs are measured at their natural size
	flexingX := nFlexX > 0 && !(measure && max2.X >= unboundedSize)
	nX := nFlexX
	lastX := lastFlexXNode
	fillingX := false
	if !flexingX && !measure && nFillX > 0 {
		fillingX = true
		nX = nFillX
		lastX = lastFillXNode
	}

	measureChild := func(child *EmbedNode, avail image.Point) image.Point {
		a := xya.Point(&avail)
		opts := PrefSizeOptions{WidthHint: sizeHint(a.X), HeightHint: sizeHint(a.Y), IncludeMargin: true}
		m0 := child.PrefSize(opts)
		return xya.Point(&m0)
	}

	// cross axis stretch, measuring only stretches to a real hint
	stretchY := func(bp, bp2 XYAxisBoolPair) bool {
		if measure {
			return bp.Y && max2.Y < unboundedSize
		}
		return bp.Y || bp2.Y
	}

	// measure non-flexible childs first to get remaining space
	available := max2
	for _, child := range childs {
		bp := xya.BoolPair(bl.flex[child])
		bp2 := xya.BoolPair(bl.fill[child])
		if (!flexingX && !fillingX) || (flexingX && !bp.X) || (fillingX && !bp2.X) {
			// flex: -X-Y
			m := measureChild(child, available)

			// flex: -X+Y
			if stretchY(bp, bp2) {
				m.Y = available.Y
			}

			sizes[child] = m
			available.X -= m.X
			if available.X < 0 {
				available.X = 0
			}
		}
	}

	// x flex childs
	{
		// divide remaining space among the flexible childs
		share := available
		if nX > 0 {
			share.X = available.X / nX
		}

		// measure flexible childs
		for _, child := range childs {
			bp := xya.BoolPair(bl.flex[child])
			bp2 := xya.BoolPair(bl.fill[child])
			if (flexingX && bp.X) || (fillingX && bp2.X) {
				var m image.Point

				// flex: +X+Y
				if stretchY(bp, bp2) {
					m = share
				} else {
					// flex: +X-Y
					m = measureChild(child, share)
					m.X = share.X
				}

				// correct rounding errors on last node
				if child == lastX {
					m.X = available.X - (share.X * (nX - 1))
				}

				sizes[child] = m
			}
		}
	}

	// setup bounds
	bounds := make(map[*EmbedNode]image.Rectangle, len(childs))
	x := 0
	for _, child := range childs {
		size := sizes[child]
		r := image.Rect(x, 0, x+size.X, size.Y)
		bounds[child] = xya.Rectangle(&r)
		x += size.X
	}
	return bounds
}

func (bl *BoxLayout) SetChildFlex(node Node, x, y bool) {
	bl.flex[node.Embed()] = XYAxisBoolPair{x, y}
}

func (bl *BoxLayout) SetChildFill(node Node, x, y bool) {
	bl.fill[node.Embed()] = XYAxisBoolPair{x, y}
}
