// Package router - batch crossing minimization.
//
// The optimizer post-processes a batch of individually valid routes to
// reduce pairwise intersections. It is best-effort by design: obstacle
// avoidance always takes precedence, and an irreducible crossing is
// left in place. Routes are visited in caller order and candidate
// shifts are enumerated in a fixed order, so the result is
// deterministic. The pass has sequential data dependencies (a shift
// changes the crossing picture for every later pair), which is why it
// runs single-threaded after the parallel routing stage.
package router

import "github.com/katalvlaran/connroute/geom"

// batchItem carries one connector's routing context through a batch:
// the inputs the optimizer needs to re-route, and the current result.
type batchItem struct {
	start, end geom.Point
	strat      Strategy
	view       obstacleView
	route      Route
	ok         bool
}

// obstacleView is the per-connector obstacle query surface (the index
// with the connector's own endpoint shapes excluded).
type obstacleView interface {
	PathBlocked(pts []geom.Point) bool
}

// crossingsBetween counts intersecting segment pairs between the
// flattened polylines of two routes.
// Complexity: O(|a|·|b|).
func crossingsBetween(a, b Route) int {
	count := 0
	for _, sa := range a.polyline() {
		for _, sb := range b.polyline() {
			if geom.SegmentsIntersect(sa, sb) {
				count++
			}
		}
	}

	return count
}

// totalCrossings counts candidate's intersections against every other
// routed item, standing in for items[self].
func totalCrossings(items []*batchItem, self int, candidate Route) int {
	total := 0
	for i, it := range items {
		if i == self || !it.ok {
			continue
		}
		if !candidate.Bounds().Intersects(it.route.Bounds()) {
			continue
		}
		total += crossingsBetween(candidate, it.route)
	}

	return total
}

// optimizeCrossings runs the pairwise minimization pass in place.
// For every crossing pair whose bounding boxes overlap it tries to
// shift one route's orthogonal midline (second route first, then the
// first) to an obstacle-free offset that strictly lowers that route's
// total crossing count.
func optimizeCrossings(items []*batchItem, cfg Config) {
	cfg = cfg.normalized()
	for i := 0; i < len(items); i++ {
		if !items[i].ok {
			continue
		}
		for j := i + 1; j < len(items); j++ {
			if !items[j].ok {
				continue
			}
			if !items[i].route.Bounds().Intersects(items[j].route.Bounds()) {
				continue
			}
			if crossingsBetween(items[i].route, items[j].route) == 0 {
				continue
			}
			if shiftMidline(items, j, cfg) {
				continue
			}
			_ = shiftMidline(items, i, cfg)
		}
	}
}

// shiftMidline tries midline offsets ±k·DetourStep for the orthogonal
// route at items[self], accepting the first obstacle-free candidate
// that strictly reduces the route's total crossings. Reports whether a
// shift was applied. Only direct Z-routes are shiftable; detour routes
// keep their geometry.
func shiftMidline(items []*batchItem, self int, cfg Config) bool {
	it := items[self]
	if it.strat != Orthogonal || len(it.route.Segments) > 3 {
		return false
	}

	current := totalCrossings(items, self, it.route)
	if current == 0 {
		return false
	}

	midY := (it.start.Y + it.end.Y) / 2
	for k := 1; k <= cfg.MaxDetourAttempts; k++ {
		offset := float64(k) * cfg.DetourStep
		for _, y := range []float64{midY + offset, midY - offset} {
			pts := zPath(it.start, it.end, y)
			if it.view.PathBlocked(pts) {
				continue
			}
			cand, ok := newRoute(pts)
			if !ok {
				continue
			}
			if totalCrossings(items, self, cand) < current {
				it.route = cand

				return true
			}
		}
	}

	return false
}

// fillCrossings computes the final per-route crossing counts across
// the whole batch, comparing only pairs with overlapping bounds.
func fillCrossings(items []*batchItem) {
	for i, it := range items {
		if !it.ok {
			continue
		}
		it.route.Crossings = totalCrossings(items, i, it.route)
	}
}
