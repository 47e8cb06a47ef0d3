// Package router - the Orthogonal strategy.
//
// The route is built from horizontal and vertical segments only.
//
// Algorithm:
//
//  1. Direct candidate: the two-bend "Z" — vertical from start to the
//     midline y=(start.Y+end.Y)/2, horizontal across, vertical to end.
//     Obstacle-free ⇒ done (3 segments, fewer when endpoints align).
//  2. Detour: locate the first obstacle blocking the Z, then run a
//     vertical detour rail beside its padded bounds — left rail first,
//     then right — at growing clearances k·DetourStep, k = 1..Max.
//     Each rail yields a V-H-V-H candidate (one extra bend). Among the
//     obstacle-free candidates of one clearance level, prefer fewest
//     bends, then shortest length, then the smaller rail x.
//  3. Fallback: shift the midline itself to y = mid ± k·DetourStep
//     (overshooting the endpoints is allowed), same bound, for blockers
//     that the rail family cannot clear.
//  4. Exhausted ⇒ ErrNoRoute. An intersecting route is never returned.
//
// The search order is fixed, so identical inputs always produce the
// identical route.
//
// Complexity: O(MaxDetourAttempts) candidates, each a constant number
// of obstacle queries.
package router

import (
	"fmt"

	"github.com/katalvlaran/connroute/geom"
	"github.com/katalvlaran/connroute/obstacle"
)

// zPath returns the Z-candidate polyline through the given midline.
func zPath(start, end geom.Point, midY float64) []geom.Point {
	return []geom.Point{
		start,
		geom.Pt(start.X, midY),
		geom.Pt(end.X, midY),
		end,
	}
}

// railPath returns the detour polyline running along the vertical rail
// at x, entering on the midline and leaving on the end row.
func railPath(start, end geom.Point, midY, x float64) []geom.Point {
	return []geom.Point{
		start,
		geom.Pt(start.X, midY),
		geom.Pt(x, midY),
		geom.Pt(x, end.Y),
		end,
	}
}

// routeOrthogonal computes an axis-aligned route from start to end.
// See the package file comment for the algorithm and search order.
func routeOrthogonal(start, end geom.Point, idx *obstacle.Index, cfg Config) (Route, error) {
	if geom.SamePoint(start, end) {
		return Route{}, ErrSamePoint
	}

	midY := (start.Y + end.Y) / 2

	// 1. Direct Z-candidate.
	direct := zPath(start, end, midY)
	if !idx.PathBlocked(direct) {
		if r, ok := newRoute(direct); ok {
			return r, nil
		}
	}

	// 2. Detour rails beside the first blocker.
	blocker, found := firstPathBlocker(direct, idx)
	if found {
		padded := blocker.Bounds.Expand(idx.Padding())
		for k := 1; k <= cfg.MaxDetourAttempts; k++ {
			clearance := float64(k) * cfg.DetourStep
			rails := []float64{padded.MinX() - clearance, padded.MaxX() + clearance}

			best := Route{}
			haveBest := false
			for _, x := range rails {
				pts := railPath(start, end, midY, x)
				if idx.PathBlocked(pts) {
					continue
				}
				r, ok := newRoute(pts)
				if !ok {
					continue
				}
				if !haveBest || betterRoute(r, best) {
					best, haveBest = r, true
				}
			}
			if haveBest {
				return best, nil
			}
		}
	}

	// 3. Shifted midline fallback.
	for k := 1; k <= cfg.MaxDetourAttempts; k++ {
		for _, y := range []float64{midY + float64(k)*cfg.DetourStep, midY - float64(k)*cfg.DetourStep} {
			pts := zPath(start, end, y)
			if idx.PathBlocked(pts) {
				continue
			}
			if r, ok := newRoute(pts); ok {
				return r, nil
			}
		}
	}

	return Route{}, fmt.Errorf("orthogonal %v→%v: %w", start, end, ErrNoRoute)
}

// betterRoute reports whether a beats b: fewer bends, then shorter,
// then the leftmost bounding box (a stable final tie-break).
func betterRoute(a, b Route) bool {
	if len(a.Segments) != len(b.Segments) {
		return len(a.Segments) < len(b.Segments)
	}
	if a.Length != b.Length {
		return a.Length < b.Length
	}

	return a.Bounds().MinX() < b.Bounds().MinX()
}

// firstPathBlocker returns the obstacle hit first along the polyline.
func firstPathBlocker(pts []geom.Point, idx *obstacle.Index) (obstacle.Shape, bool) {
	for i := 0; i+1 < len(pts); i++ {
		if sh, ok := idx.FirstBlocking(geom.Seg(pts[i], pts[i+1])); ok {
			return sh, true
		}
	}

	return obstacle.Shape{}, false
}

// RoutePoints routes between two explicit points with the given
// strategy against the obstacle index. This is the strategy-level
// entry; Engine.Route adds shape anchoring and endpoint exclusion on
// top of it. The detour and curve tunables are read from cfg
// (zero values take their defaults).
func RoutePoints(start, end geom.Point, s Strategy, idx *obstacle.Index, cfg Config) (Route, error) {
	cfg = cfg.normalized()
	if cfg.MaxDetourAttempts <= 0 || cfg.DetourStep <= 0 {
		return Route{}, ErrBadDetour
	}
	if cfg.CurveTension <= 0 {
		return Route{}, ErrBadTension
	}

	switch s {
	case Orthogonal:
		return routeOrthogonal(start, end, idx, cfg)
	case Curved:
		return routeCurved(start, end, idx, cfg)
	case Straight:
		return routeStraight(start, end, idx)
	default:
		return Route{}, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
}
