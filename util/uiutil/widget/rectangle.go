package widget

import (
	"image"
)

// Leaf node with a natural size.
type Rectangle struct {
	ENode
	Size image.Point
}

func NewRectangle(size image.Point) *Rectangle {
	r := &Rectangle{Size: size}
	r.SetLayout(&rectangleLayout{r: r})
	return r
}

func (r *Rectangle) SetNaturalSize(size image.Point) {
	if size == r.Size {
		return
	}
	r.Size = size
	r.InvalidateLayoutTree(true)
}

//----------

type rectangleLayout struct {
	AbstractLayout
	r *Rectangle
}

func (l *rectangleLayout) Layout(en *EmbedNode) {}

func (l *rectangleLayout) PreferredLayoutSize(en *EmbedNode, opts PrefSizeOptions) image.Point {
	return l.r.Size.Add(en.Insets().Size())
}
