package canvas

import "math"

// CoordMax is the largest coordinate used for items that extend
// "to the end of the canvas", such as marker extension lines.
const CoordMax = 1.7e307

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle given by two corners.
// A Rect is normalized when X0 <= X1 and Y0 <= Y1.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// EmptyRect returns a rectangle that acts as the identity for Union.
func EmptyRect() Rect {
	return Rect{X0: math.Inf(1), Y0: math.Inf(1), X1: math.Inf(-1), Y1: math.Inf(-1)}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Normalize returns the rectangle with its corners ordered.
func (r Rect) Normalize() Rect {
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Translate returns the rectangle moved by p.
func (r Rect) Translate(p Point) Rect {
	return Rect{X0: r.X0 + p.X, Y0: r.Y0 + p.Y, X1: r.X1 + p.X, Y1: r.Y1 + p.Y}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, o.X0),
		Y0: math.Min(r.Y0, o.Y0),
		X1: math.Max(r.X1, o.X1),
		Y1: math.Max(r.Y1, o.Y1),
	}
}

// Expand returns the rectangle grown by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{X0: r.X0 - d, Y0: r.Y0 - d, X1: r.X1 + d, Y1: r.Y1 + d}
}

// Contains reports whether p lies inside the rectangle, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// boundsOf returns the bounding rectangle of a point set.
func boundsOf(pts []Point) Rect {
	r := EmptyRect()
	for _, p := range pts {
		r = r.Union(Rect{X0: p.X, Y0: p.Y, X1: p.X, Y1: p.Y})
	}
	return r
}
