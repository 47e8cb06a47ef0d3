// Package geom - intersection predicates for segments and rectangles.
//
// Two families of tests serve two distinct routing concerns:
//
//   - SegmentsIntersect answers "do two routes cross?" and therefore
//     counts boundary contact and collinear overlap as intersections.
//   - SegmentIntersectsRect answers "does a route violate a padded
//     obstacle?" and therefore counts interior overlap only: a route is
//     allowed to slide along, or graze the corner of, a padded bound.
//
// Complexity: all predicates are O(1).
package geom

import "math"

// orient returns the signed area of the triangle (a, b, c):
// positive for counter-clockwise, negative for clockwise, ~0 collinear.
func orient(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// onSegment reports whether collinear point p lies within the bounding
// box of segment s.
func onSegment(s Segment, p Point) bool {
	return p.X >= math.Min(s.A.X, s.B.X)-Eps && p.X <= math.Max(s.A.X, s.B.X)+Eps &&
		p.Y >= math.Min(s.A.Y, s.B.Y)-Eps && p.Y <= math.Max(s.A.Y, s.B.Y)+Eps
}

// SegmentsIntersect reports whether segments s and t share at least one
// point. Endpoint contact and collinear overlap both count.
// Complexity: O(1).
func SegmentsIntersect(s, t Segment) bool {
	d1 := orient(t.A, t.B, s.A)
	d2 := orient(t.A, t.B, s.B)
	d3 := orient(s.A, s.B, t.A)
	d4 := orient(s.A, s.B, t.B)

	// Proper crossing: endpoints of each segment on opposite sides of the other.
	if ((d1 > Eps && d2 < -Eps) || (d1 < -Eps && d2 > Eps)) &&
		((d3 > Eps && d4 < -Eps) || (d3 < -Eps && d4 > Eps)) {
		return true
	}

	// Degenerate contact: a collinear endpoint lying on the other segment.
	if math.Abs(d1) <= Eps && onSegment(t, s.A) {
		return true
	}
	if math.Abs(d2) <= Eps && onSegment(t, s.B) {
		return true
	}
	if math.Abs(d3) <= Eps && onSegment(s, t.A) {
		return true
	}
	if math.Abs(d4) <= Eps && onSegment(s, t.B) {
		return true
	}

	return false
}

// ClipSegmentToRect clips the parametric segment s(t) = A + t·(B−A),
// t ∈ [0,1], against rectangle r (Liang–Barsky). It returns the clipped
// parameter span [t0, t1] and ok=true when the segment overlaps the
// closed rectangle.
// Complexity: O(1).
func ClipSegmentToRect(s Segment, r Rect) (t0, t1 float64, ok bool) {
	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y

	// Point-like segment: inside or not.
	if math.Abs(dx) <= Eps && math.Abs(dy) <= Eps {
		if r.Contains(s.A) {
			return 0, 1, true
		}

		return 0, 0, false
	}

	t0, t1 = 0, 1
	// Each entry is the (p, q) pair of one rectangle boundary.
	bounds := [4][2]float64{
		{-dx, s.A.X - r.MinX()}, // left
		{dx, r.MaxX() - s.A.X},  // right
		{-dy, s.A.Y - r.MinY()}, // bottom
		{dy, r.MaxY() - s.A.Y},  // top
	}
	for _, pq := range bounds {
		p, q := pq[0], pq[1]
		if math.Abs(p) <= Eps {
			if q < 0 {
				return 0, 0, false // parallel and outside
			}

			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	return t0, t1, true
}

// SegmentIntersectsRect reports whether segment s passes through the
// interior of rectangle r. Boundary contact (sliding along an edge,
// grazing a corner) does not count; see the package documentation.
// Complexity: O(1).
func SegmentIntersectsRect(s Segment, r Rect) bool {
	inner := r.Expand(-Eps)
	if inner.IsDegenerate() {
		return false
	}
	t0, t1, ok := ClipSegmentToRect(s, inner)

	return ok && t1-t0 > Eps
}
