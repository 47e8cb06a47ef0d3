// Package router - the Straight strategy.
package router

import (
	"fmt"

	"github.com/katalvlaran/connroute/geom"
	"github.com/katalvlaran/connroute/obstacle"
)

// routeStraight joins start and end with a single line segment.
// A straight connector is only valid when nothing lies between its
// endpoints — that is a caller contract, so an intersecting obstacle
// is a hard ErrNoRoute, with no detour logic.
// Complexity: one obstacle query.
func routeStraight(start, end geom.Point, idx *obstacle.Index) (Route, error) {
	if geom.SamePoint(start, end) {
		return Route{}, ErrSamePoint
	}
	if idx.Blocked(geom.Seg(start, end)) {
		return Route{}, fmt.Errorf("straight %v→%v: %w", start, end, ErrNoRoute)
	}

	return Route{
		Segments: []Segment{{Start: start, End: end, Kind: KindStraight}},
		Length:   geom.Dist(start, end),
	}, nil
}
