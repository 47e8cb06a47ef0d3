// Package router - core data model: Shape, Segment, Route, Strategy,
// and the sentinel error taxonomy.
package router

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/connroute/geom"
)

// Base sentinel errors. Specific failures wrap exactly one base, so
// errors.Is works against either level.
var (
	// ErrConfig is the base for malformed-configuration failures.
	ErrConfig = errors.New("router: invalid configuration")
	// ErrValidation is the base for degenerate-input failures.
	ErrValidation = errors.New("router: invalid routing input")
	// ErrRouting is the base for exhausted-search failures.
	ErrRouting = errors.New("router: routing failed")
)

// Wrapped specific errors.
var (
	// ErrUnknownStrategy indicates a strategy tag that names no algorithm.
	ErrUnknownStrategy = fmt.Errorf("%w: unknown strategy tag", ErrConfig)
	// ErrUnknownPolicy indicates an unrecognized override policy.
	ErrUnknownPolicy = fmt.Errorf("%w: unknown override policy", ErrConfig)
	// ErrBadPadding indicates a negative obstacle padding.
	ErrBadPadding = fmt.Errorf("%w: padding must be non-negative", ErrConfig)
	// ErrBadDetour indicates non-positive detour search bounds.
	ErrBadDetour = fmt.Errorf("%w: detour attempts and step must be positive", ErrConfig)
	// ErrBadTension indicates a non-positive curve tension.
	ErrBadTension = fmt.Errorf("%w: curve tension must be positive", ErrConfig)
	// ErrBadSnap indicates a negative snap step.
	ErrBadSnap = fmt.Errorf("%w: snap step must be non-negative", ErrConfig)

	// ErrDegenerateShape indicates a shape with non-positive dimensions.
	ErrDegenerateShape = fmt.Errorf("%w: shape has non-positive width or height", ErrValidation)
	// ErrDuplicateShape indicates two shapes sharing one ID.
	ErrDuplicateShape = fmt.Errorf("%w: duplicate shape ID", ErrValidation)
	// ErrShapeNotFound indicates a connector referencing an unknown shape.
	ErrShapeNotFound = fmt.Errorf("%w: shape not found", ErrValidation)
	// ErrSamePoint indicates coincident start and end points.
	ErrSamePoint = fmt.Errorf("%w: start and end points coincide", ErrValidation)

	// ErrNoRoute indicates no obstacle-free route within the search bound.
	// Callers may retry with relaxed padding or adjust shape placement.
	ErrNoRoute = fmt.Errorf("%w: no obstacle-free route within search bound", ErrRouting)
)

// Shape is a diagram shape as seen by the router: identity, bounding
// rectangle and a type tag used for strategy override lookup. Shapes
// are owned by the caller; the router only reads them.
type Shape struct {
	ID     string
	Bounds geom.Rect
	Type   string
}

// Strategy enumerates the routing algorithm variants.
type Strategy int

const (
	// Orthogonal routes with horizontal and vertical segments only,
	// detouring around obstacles with extra bends.
	Orthogonal Strategy = iota
	// Curved routes a single cubic segment; obstacles are a hard error.
	Curved
	// Straight routes a single line segment; obstacles are a hard error.
	Straight
)

// Strategy tags as they appear in configuration.
const (
	TagOrthogonal = "orthogonal"
	TagCurved     = "curved"
	TagStraight   = "straight"
)

// String returns the configuration tag of the strategy.
func (s Strategy) String() string {
	switch s {
	case Orthogonal:
		return TagOrthogonal
	case Curved:
		return TagCurved
	case Straight:
		return TagStraight
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a configuration tag to its Strategy.
// Unrecognized tags fail with ErrUnknownStrategy — malformed
// configuration is surfaced, never silently defaulted.
func ParseStrategy(tag string) (Strategy, error) {
	switch tag {
	case TagOrthogonal:
		return Orthogonal, nil
	case TagCurved:
		return Curved, nil
	case TagStraight:
		return Straight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, tag)
	}
}

// SegmentKind distinguishes straight from curved route segments.
type SegmentKind int

const (
	// KindStraight marks a plain line segment.
	KindStraight SegmentKind = iota
	// KindCurved marks a cubic segment; Ctrl1/Ctrl2 are meaningful.
	KindCurved
)

// Segment is one piece of a route. For KindCurved segments, Ctrl1 and
// Ctrl2 are the cubic control points; for KindStraight they are zero.
type Segment struct {
	Start, End   geom.Point
	Kind         SegmentKind
	Ctrl1, Ctrl2 geom.Point
}

// line returns the straight-line view of the segment endpoints.
func (s Segment) line() geom.Segment { return geom.Seg(s.Start, s.End) }

// Route is an ordered, non-empty sequence of segments joining two
// points. Length is the total polyline length; Crossings is the number
// of intersections with other routes in the same batch, filled in
// during batch finalization. Routes are immutable output values.
type Route struct {
	Segments  []Segment
	Length    float64
	Crossings int
}

// Start returns the first point of the route.
func (r Route) Start() geom.Point { return r.Segments[0].Start }

// End returns the last point of the route.
func (r Route) End() geom.Point { return r.Segments[len(r.Segments)-1].End }

// Points returns the route's polyline vertices: every segment start
// plus the final end. Curved segments contribute their endpoints only;
// use polyline() for the flattened form.
func (r Route) Points() []geom.Point {
	pts := make([]geom.Point, 0, len(r.Segments)+1)
	for _, s := range r.Segments {
		pts = append(pts, s.Start)
	}

	return append(pts, r.End())
}

// Bounds returns the axis-aligned bounding box of the route polyline.
func (r Route) Bounds() geom.Rect {
	b := r.Segments[0].line().Bounds()
	for _, s := range r.Segments[1:] {
		b = b.Union(s.line().Bounds())
	}

	return b
}

// polyline returns the flattened straight-segment form of the route,
// expanding curved segments for crossing and collision arithmetic.
func (r Route) polyline() []geom.Segment {
	segs := make([]geom.Segment, 0, len(r.Segments))
	for _, s := range r.Segments {
		if s.Kind == KindCurved {
			pts := flattenCubic(s.Start, s.Ctrl1, s.Ctrl2, s.End, curveFlattenSteps)
			for i := 0; i+1 < len(pts); i++ {
				segs = append(segs, geom.Seg(pts[i], pts[i+1]))
			}

			continue
		}
		segs = append(segs, s.line())
	}

	return segs
}

// newRoute assembles a Route from polyline vertices, dropping
// zero-length pieces and merging collinear runs. Returns ok=false when
// fewer than two distinct points remain.
func newRoute(pts []geom.Point) (Route, bool) {
	clean := make([]geom.Point, 0, len(pts))
	for _, p := range pts {
		if len(clean) > 0 && geom.SamePoint(clean[len(clean)-1], p) {
			continue
		}
		clean = append(clean, p)
	}
	// Merge collinear triples (axis-aligned runs from degenerate bends).
	merged := make([]geom.Point, 0, len(clean))
	for _, p := range clean {
		for len(merged) >= 2 && collinear(merged[len(merged)-2], merged[len(merged)-1], p) {
			merged = merged[:len(merged)-1]
		}
		merged = append(merged, p)
	}
	if len(merged) < 2 {
		return Route{}, false
	}

	segs := make([]Segment, 0, len(merged)-1)
	total := 0.0
	for i := 0; i+1 < len(merged); i++ {
		segs = append(segs, Segment{Start: merged[i], End: merged[i+1], Kind: KindStraight})
		total += geom.Dist(merged[i], merged[i+1])
	}

	return Route{Segments: segs, Length: total}, true
}

// collinear reports whether b lies on the straight line through a and c
// between them, so that a→b→c can collapse to a→c.
func collinear(a, b, c geom.Point) bool {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if cross > geom.Eps || cross < -geom.Eps {
		return false
	}
	dot := (b.X-a.X)*(c.X-b.X) + (b.Y-a.Y)*(c.Y-b.Y)

	return dot >= -geom.Eps
}
