package curve

import "math"

// A Point is a position on a drawing surface. It doubles as a 2D vector
// for the tangent arithmetic in this package.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale returns p with both coordinates multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Midpoint returns the point halfway between two points.
func (p Point) Midpoint(o Point) Point {
	return Point{X: 0.5 * (p.X + o.X), Y: 0.5 * (p.Y + o.Y)}
}

// Normalize returns the unit vector in the direction of p. The zero
// vector normalizes to itself, so coincident neighbours never produce a
// NaN tangent.
func (p Point) Normalize() Point {
	length := math.Hypot(p.X, p.Y)
	if length == 0 {
		return Point{}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}
