package imageutil

import (
	"image"
)

func MaxPoint(p1, p2 image.Point) image.Point {
	if p1.X < p2.X {
		p1.X = p2.X
	}
	if p1.Y < p2.Y {
		p1.Y = p2.Y
	}
	return p1
}
func MinPoint(p1, p2 image.Point) image.Point {
	if p1.X > p2.X {
		p1.X = p2.X
	}
	if p1.Y > p2.Y {
		p1.Y = p2.Y
	}
	return p1
}

//----------

// Moves r so that it is inside bounds (as much as possible), then clips it.
func FitInside(r, bounds image.Rectangle) image.Rectangle {
	if r.Max.X > bounds.Max.X {
		r = r.Sub(image.Point{r.Max.X - bounds.Max.X, 0})
	}
	if r.Max.Y > bounds.Max.Y {
		r = r.Sub(image.Point{0, r.Max.Y - bounds.Max.Y})
	}
	if r.Min.X < bounds.Min.X {
		r = r.Add(image.Point{bounds.Min.X - r.Min.X, 0})
	}
	if r.Min.Y < bounds.Min.Y {
		r = r.Add(image.Point{0, bounds.Min.Y - r.Min.Y})
	}
	return r.Intersect(bounds)
}
