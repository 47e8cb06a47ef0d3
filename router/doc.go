// Package router computes connector routes between diagram shapes:
// strategy selection, obstacle-aware path computation, crossing
// minimization and batch orchestration.
//
// What:
//
//   - Shape, Segment, Route — the routing data model. A Route is an
//     ordered, non-empty sequence of segments whose first and last
//     endpoints equal the requested start and end.
//   - Config — default strategy tag, per-shape-type overrides, obstacle
//     padding, crossing optimization, and the detour search bounds.
//     Loadable from YAML.
//   - SelectStrategy — resolves which strategy routes a given
//     (start shape, end shape) pair under an explicit override policy.
//   - RoutePoints — the strategy dispatch: Orthogonal, Curved or
//     Straight route between two points against an obstacle index.
//   - Engine — batch routing over a shape set: anchors connectors at
//     facing shape edges, routes each connector independently (and
//     concurrently), then optionally minimizes pairwise crossings.
//
// Why:
//
//   - Diagram generators place shapes; connecting them cleanly is the
//     algorithmically hard part: geometric reasoning, obstacle-aware
//     pathfinding, per-shape-type strategy policy, and a global
//     crossing-minimization concern coupling otherwise-independent
//     routing decisions.
//
// Determinism:
//
//   - Every strategy, the factory and the optimizer are fully
//     deterministic: identical inputs yield identical routes.
//
// Complexity:
//
//   - RoutePoints (Orthogonal): O(A·P·Q) worst case, A = detour
//     attempts, P = path segments per candidate, Q = obstacle query.
//   - Engine.RouteBatch: routing is embarrassingly parallel per
//     connector; optimization is a sequential O(n²) pairwise pass over
//     overlapping route pairs.
//
// Errors (sentinel bases, each with wrapped specifics):
//
//   - ErrConfig — malformed configuration (unknown strategy tag,
//     negative padding, bad detour bounds). Never silently defaulted.
//   - ErrValidation — degenerate input geometry (zero-size shape,
//     coincident endpoints, unknown shape ID).
//   - ErrRouting — no obstacle-free route within the search bound.
//
// See SelectStrategy for the override tie-break policy and
// routeOrthogonal (orthogonal.go) for the detour search.
package router
