// Package connroute computes clean connector paths between shapes on a
// 2-D diagram canvas — obstacle-aware, strategy-driven, and deterministic.
//
// 🚀 What is connroute?
//
//	A pure-algorithm library that brings together:
//		• Geometry primitives: points, rectangles, segments & intersection tests
//		• Obstacle index: padded, grid-bucketed collision queries over shape sets
//		• Routing strategies: Orthogonal (bend-aware detours), Curved, Straight
//		• Strategy factory: per-shape-type overrides with an explicit tie-break policy
//		• Crossing optimizer: best-effort reduction of route/route intersections
//		• Batch engine: per-connector results, metrics, safe parallel routing
//
// ✨ Why choose connroute?
//
//   - Deterministic – identical inputs always produce identical routes
//   - Honest failures – blocked routes return errors, never silently bad geometry
//   - Pure Go – no rendering, no file formats, no hidden I/O
//   - Extensible – strategies are resolved from plain configuration tags
//
// Everything is organized under three subpackages:
//
//	geom/     — value-type geometry: Point, Rect, Segment, intersection predicates
//	obstacle/ — read-only spatial index with padding and endpoint exclusion
//	router/   — strategies, configuration, factory, optimizer & batch engine
//
// Quick ASCII example:
//
//	    A────┐
//	         │   ┌─────┐
//	         │   │ OBS │
//	         │   └─────┘
//	         └────────────B
//
//	an orthogonal route detours around the obstacle with one extra bend.
//
// Dive into the package docs for algorithms, complexity notes and the
// configuration reference.
//
//	go get github.com/katalvlaran/connroute
package connroute
