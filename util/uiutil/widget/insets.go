package widget

import "image"

// Insets of a node: padding+border (Pad) or margins.
type Insets struct {
	Top, Right, Bottom, Left int
}

func NewInsets(t, r, b, l int) Insets {
	return Insets{t, r, b, l}
}

func UniformInsets(v int) Insets {
	return Insets{v, v, v, v}
}

func (in Insets) Horizontal() int {
	return in.Left + in.Right
}
func (in Insets) Vertical() int {
	return in.Top + in.Bottom
}

func (in Insets) Size() image.Point {
	return image.Point{in.Horizontal(), in.Vertical()}
}

func (in Insets) TopLeft() image.Point {
	return image.Point{in.Left, in.Top}
}

// Shrinks the rectangle by the insets. The result is never inverted.
func (in Insets) Shrink(r image.Rectangle) image.Rectangle {
	u := r
	u.Min = u.Min.Add(image.Point{in.Left, in.Top})
	u.Max = u.Max.Sub(image.Point{in.Right, in.Bottom})
	if u.Max.X < u.Min.X {
		u.Max.X = u.Min.X
	}
	if u.Max.Y < u.Min.Y {
		u.Max.Y = u.Min.Y
	}
	return u
}
