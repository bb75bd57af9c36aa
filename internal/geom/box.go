// Package geom provides the small amount of 2D geometry the block editor
// needs: points, axis-aligned boxes and coordinate frames.
package geom

import "math"

// Point is a position in some coordinate frame.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Box is an axis-aligned rectangle given by two corners.
//
// NewBox keeps the corners as given; boxes produced by Combine, Transform and
// Normalize always have X1 <= X2 and Y1 <= Y2.
type Box struct {
	X1, Y1 float64
	X2, Y2 float64
}

// NewBox returns the box with corners (x1, y1) and (x2, y2).
func NewBox(x1, y1, x2, y2 float64) Box {
	return Box{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 { return math.Abs(b.X2 - b.X1) }

// Height returns the vertical extent of the box.
func (b Box) Height() float64 { return math.Abs(b.Y2 - b.Y1) }

// Normalize returns b with its corners ordered min to max on both axes.
func (b Box) Normalize() Box {
	return Box{
		X1: math.Min(b.X1, b.X2),
		Y1: math.Min(b.Y1, b.Y2),
		X2: math.Max(b.X1, b.X2),
		Y2: math.Max(b.Y1, b.Y2),
	}
}

// Combine returns the smallest box containing both a and b.
func Combine(a, b Box) Box {
	a, b = a.Normalize(), b.Normalize()
	return Box{
		X1: math.Min(a.X1, b.X1),
		Y1: math.Min(a.Y1, b.Y1),
		X2: math.Max(a.X2, b.X2),
		Y2: math.Max(a.Y2, b.Y2),
	}
}

// Combine returns the smallest box containing both b and o.
func (b Box) Combine(o Box) Box { return Combine(b, o) }

// Overlaps reports whether a and b intersect. The test is closed on both
// axes: boxes that only touch along an edge or at a corner overlap.
func Overlaps(a, b Box) bool {
	return spanOverlaps(a.X1, a.X2, b.X1, b.X2) && spanOverlaps(a.Y1, a.Y2, b.Y1, b.Y2)
}

// Overlaps reports whether b and o intersect.
func (b Box) Overlaps(o Box) bool { return Overlaps(b, o) }

func spanOverlaps(a1, a2, b1, b2 float64) bool {
	return !(a2 < b1 || a1 > b2)
}

// Contains reports whether o lies entirely inside b, edges included.
func (b Box) Contains(o Box) bool {
	b, o = b.Normalize(), o.Normalize()
	return o.X1 >= b.X1 && o.X2 <= b.X2 && o.Y1 >= b.Y1 && o.Y2 <= b.Y2
}

// Translate returns b moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	return Box{X1: b.X1 + dx, Y1: b.Y1 + dy, X2: b.X2 + dx, Y2: b.Y2 + dy}
}

// Transform maps both corners of b into the local coordinates of f and
// returns the normalized result. A mirroring frame would otherwise swap the
// corners and break Overlaps.
func (b Box) Transform(f Frame) Box {
	p := f.ToLocal(Point{b.X1, b.Y1})
	q := f.ToLocal(Point{b.X2, b.Y2})
	return Box{X1: p.X, Y1: p.Y, X2: q.X, Y2: q.Y}.Normalize()
}
