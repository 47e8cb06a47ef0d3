// Package geom defines Point, Rect and Segment value types.
// Intersection predicates live in intersect.go.
package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// Eps is the absolute tolerance used by all geometric comparisons.
const Eps = 1e-9

// Point is a 2-D coordinate. It aliases gonum's r2.Vec, so the r2
// package functions (r2.Add, r2.Sub, r2.Scale, r2.Norm) apply
// directly.
type Point = r2.Vec

// Pt constructs a Point from its coordinates.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Dist returns the Euclidean distance between a and b.
// Complexity: O(1).
func Dist(a, b Point) float64 { return r2.Norm(r2.Sub(b, a)) }

// SamePoint reports whether a and b coincide within Eps.
// Complexity: O(1).
func SamePoint(a, b Point) bool {
	return scalar.EqualWithinAbs(a.X, b.X, Eps) && scalar.EqualWithinAbs(a.Y, b.Y, Eps)
}

// Rect is an axis-aligned rectangle anchored at its minimum corner
// (X, Y) with non-negative Width and Height.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect constructs a Rect from its minimum corner and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// MinX returns the left edge coordinate.
func (r Rect) MinX() float64 { return r.X }

// MaxX returns the right edge coordinate.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MinY returns the bottom edge coordinate (minimum Y).
func (r Rect) MinY() float64 { return r.Y }

// MaxY returns the top edge coordinate (maximum Y).
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Center returns the geometric center of the rectangle.
// Complexity: O(1).
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside r, boundary inclusive.
// Complexity: O(1).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX()-Eps && p.X <= r.MaxX()+Eps &&
		p.Y >= r.MinY()-Eps && p.Y <= r.MaxY()+Eps
}

// containsOpen reports whether p lies strictly inside r.
func (r Rect) containsOpen(p Point) bool {
	return p.X > r.MinX()+Eps && p.X < r.MaxX()-Eps &&
		p.Y > r.MinY()+Eps && p.Y < r.MaxY()-Eps
}

// Expand returns r grown symmetrically by pad on every side.
// A negative pad shrinks the rectangle; the result may be degenerate.
// Complexity: O(1).
func (r Rect) Expand(pad float64) Rect {
	return Rect{
		X:      r.X - pad,
		Y:      r.Y - pad,
		Width:  r.Width + 2*pad,
		Height: r.Height + 2*pad,
	}
}

// Intersects reports whether r and o overlap, boundary contact included.
// Complexity: O(1).
func (r Rect) Intersects(o Rect) bool {
	return r.MinX() <= o.MaxX()+Eps && o.MinX() <= r.MaxX()+Eps &&
		r.MinY() <= o.MaxY()+Eps && o.MinY() <= r.MaxY()+Eps
}

// Union returns the smallest rectangle covering both r and o.
// Complexity: O(1).
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.MinX(), o.MinX())
	minY := math.Min(r.MinY(), o.MinY())
	maxX := math.Max(r.MaxX(), o.MaxX())
	maxY := math.Max(r.MaxY(), o.MaxY())

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// IsDegenerate reports whether the rectangle has non-positive width or
// height.
func (r Rect) IsDegenerate() bool {
	return r.Width <= Eps || r.Height <= Eps
}

// Segment is an ordered pair of Points.
type Segment struct {
	A, B Point
}

// Seg constructs a Segment from a to b.
func Seg(a, b Point) Segment { return Segment{A: a, B: b} }

// Length returns the Euclidean length of the segment.
// Complexity: O(1).
func (s Segment) Length() float64 { return Dist(s.A, s.B) }

// IsZero reports whether both endpoints coincide within Eps.
func (s Segment) IsZero() bool { return SamePoint(s.A, s.B) }

// IsHorizontal reports whether the segment is axis-aligned horizontal.
func (s Segment) IsHorizontal() bool {
	return scalar.EqualWithinAbs(s.A.Y, s.B.Y, Eps) && !s.IsZero()
}

// IsVertical reports whether the segment is axis-aligned vertical.
func (s Segment) IsVertical() bool {
	return scalar.EqualWithinAbs(s.A.X, s.B.X, Eps) && !s.IsZero()
}

// Midpoint returns the point halfway between the endpoints.
func (s Segment) Midpoint() Point {
	return r2.Add(s.A, r2.Scale(0.5, r2.Sub(s.B, s.A)))
}

// Bounds returns the axis-aligned bounding box of the segment.
// Complexity: O(1).
func (s Segment) Bounds() Rect {
	minX := math.Min(s.A.X, s.B.X)
	minY := math.Min(s.A.Y, s.B.Y)

	return Rect{
		X:      minX,
		Y:      minY,
		Width:  math.Abs(s.B.X - s.A.X),
		Height: math.Abs(s.B.Y - s.A.Y),
	}
}
