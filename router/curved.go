// Package router - the Curved strategy.
//
// The route is one cubic segment whose control points sit at one and
// two thirds of the start→end chord, offset perpendicular to it by
// CurveTension × chord length. Collision testing flattens the cubic to
// a fixed-step polyline — a control-polygon approximation sufficient
// for clearance checking, not an exact curve/rectangle test.
package router

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/connroute/geom"
	"github.com/katalvlaran/connroute/obstacle"
)

// curveFlattenSteps is the fixed polyline resolution for collision and
// crossing arithmetic on curved segments.
const curveFlattenSteps = 16

// routeCurved joins start and end with a single cubic segment.
// Same obstacle contract as Straight: a blocked curve is ErrNoRoute.
// Complexity: O(curveFlattenSteps) obstacle queries.
func routeCurved(start, end geom.Point, idx *obstacle.Index, cfg Config) (Route, error) {
	if geom.SamePoint(start, end) {
		return Route{}, ErrSamePoint
	}

	chord := r2.Sub(end, start)
	length := geom.Dist(start, end)
	// Unit normal to the chord; the offset bows the curve to one side.
	normal := geom.Pt(-chord.Y/length, chord.X/length)
	offset := r2.Scale(cfg.CurveTension*length, normal)

	c1 := r2.Add(r2.Add(start, r2.Scale(1.0/3, chord)), offset)
	c2 := r2.Add(r2.Add(start, r2.Scale(2.0/3, chord)), offset)

	flat := flattenCubic(start, c1, c2, end, curveFlattenSteps)
	if idx.PathBlocked(flat) {
		return Route{}, fmt.Errorf("curved %v→%v: %w", start, end, ErrNoRoute)
	}

	return Route{
		Segments: []Segment{{Start: start, End: end, Kind: KindCurved, Ctrl1: c1, Ctrl2: c2}},
		Length:   polylineLength(flat),
	}, nil
}

// flattenCubic samples the cubic Bézier (p0, c1, c2, p1) at steps+1
// evenly spaced parameters, endpoints included.
func flattenCubic(p0, c1, c2, p1 geom.Point, steps int) []geom.Point {
	pts := make([]geom.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		u := 1 - t
		// B(t) = u³·p0 + 3u²t·c1 + 3ut²·c2 + t³·p1
		p := r2.Add(
			r2.Add(r2.Scale(u*u*u, p0), r2.Scale(3*u*u*t, c1)),
			r2.Add(r2.Scale(3*u*t*t, c2), r2.Scale(t*t*t, p1)),
		)
		pts = append(pts, p)
	}

	return pts
}

// polylineLength sums the chord lengths of consecutive points.
func polylineLength(pts []geom.Point) float64 {
	total := 0.0
	for i := 0; i+1 < len(pts); i++ {
		total += geom.Dist(pts[i], pts[i+1])
	}

	return total
}
