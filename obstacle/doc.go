// Package obstacle provides a read-only spatial index over diagram
// shapes for padded collision queries during connector routing.
//
// What:
//
//   - Index wraps a shape set with per-shape padded bounds and a uniform
//     grid of cell buckets for sub-linear candidate lookup.
//   - Blocked / PathBlocked answer "does this segment (or polyline)
//     pass through any padded obstacle?".
//   - FirstBlocking returns the obstacle a segment hits first, which
//     drives the orthogonal router's detour direction.
//   - Exclude builds a cheap view that ignores the two shapes being
//     connected: a route may legally touch its own endpoints.
//
// Why:
//
//   - Obstacle-aware routing tests every candidate segment against the
//     shape set; a linear scan per query does not scale past small
//     diagrams. Cell bucketing reduces each query to the shapes whose
//     padded bounds touch the segment's bounding cells.
//
// Complexity:
//
//   - NewIndex: O(S·c) time and memory, S = shapes, c = cells per shape.
//   - Blocked / FirstBlocking: O(cells touched + candidates) per query.
//   - Exclude: O(k) for k excluded IDs; buckets are shared, not copied.
//
// Options:
//
//   - Options.Padding: clearance added around every shape (≥ 0).
//   - Options.CellSize: bucket edge length (> 0; default 64).
//
// Errors:
//
//   - ErrBadPadding: negative padding.
//   - ErrBadCellSize: non-positive cell size.
//   - ErrDegenerateShape: a shape with non-positive width or height.
//
// The index is immutable once built and safe for concurrent queries.
package obstacle
