// Package geom provides the value-type geometry primitives underlying
// connector routing: points, axis-aligned rectangles, line segments and
// the intersection predicates used for obstacle avoidance and crossing
// detection.
//
// What:
//
//   - Point — a 2-D coordinate (gonum's r2.Vec: plain X/Y float64 fields).
//   - Rect — an axis-aligned rectangle anchored at its minimum corner,
//     with Center, Contains, Expand, Intersects and Union.
//   - Segment — an ordered pair of Points with length, orientation and
//     bounding-box helpers.
//   - Predicates — SegmentsIntersect (orientation test, collinear-overlap
//     aware), SegmentIntersectsRect (interior-overlap semantics) and
//     ClipSegmentToRect (parametric Liang–Barsky clipping).
//
// Why:
//
//   - Obstacle avoidance: does a candidate route segment pass through a
//     padded obstacle rectangle?
//   - Crossing minimization: do two routes' segments intersect?
//   - Anchoring: where does a connector meet a shape's boundary?
//
// Semantics:
//
//   - All types are immutable values; methods never mutate receivers.
//   - SegmentIntersectsRect reports interior overlap only: a segment
//     sliding along a rectangle edge, or grazing a corner, is NOT an
//     intersection. Routes may legally touch padded obstacle boundaries.
//   - Comparisons are stabilized by Eps (1e-9) via gonum's floats/scalar.
//
// Complexity: every predicate is O(1).
package geom
