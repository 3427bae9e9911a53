// Package gamemath holds the pure geometry used by the simulation: axis-aligned
// rectangles, cardinal directions and tile collision resolution.
// It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

import "math"

// Rect is an axis-aligned bounding box in pixel units.
type Rect struct {
	X, Y, W, H float64
}

// NewRect returns a rectangle at (x, y) of size w×h.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() float64 { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// At returns r with its top-left corner moved to (x, y).
func (r Rect) At(x, y float64) Rect {
	r.X = x
	r.Y = y
	return r
}

// Intersection returns the overlapping region of a and b. The second return
// value is false unless the region has positive width and height, so rects
// that merely share an edge or a corner do not intersect.
func Intersection(a, b Rect) (Rect, bool) {
	left := math.Max(a.X, b.X)
	top := math.Max(a.Y, b.Y)
	right := math.Min(a.Right(), b.Right())
	bottom := math.Min(a.Bottom(), b.Bottom())

	if left < right && top < bottom {
		return Rect{X: left, Y: top, W: right - left, H: bottom - top}, true
	}
	return Rect{}, false
}

// Intersects reports whether a and b overlap with a non-zero area.
func Intersects(a, b Rect) bool {
	_, ok := Intersection(a, b)
	return ok
}

// Ahead returns the top-left corner of a rect of r's size placed reach sizes
// in front of r along d.
func (r Rect) Ahead(d Direction, reach float64) (float64, float64) {
	vx, vy := d.Vector()
	return r.X + vx*r.W*reach, r.Y + vy*r.H*reach
}
