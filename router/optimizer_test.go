package router

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/connroute/geom"
	"github.com/katalvlaran/connroute/obstacle"
)

//--------------------------------------//
//          Fixtures & helpers          //
//--------------------------------------//

func bareIndex(t *testing.T, rects ...geom.Rect) *obstacle.Index {
	t.Helper()
	shapes := make([]obstacle.Shape, len(rects))
	for i, r := range rects {
		shapes[i] = obstacle.Shape{ID: string(rune('a' + i)), Bounds: r}
	}
	ix, err := obstacle.NewIndex(shapes, obstacle.DefaultOptions())
	require.NoError(t, err)

	return ix
}

func mustRoute(t *testing.T, pts []geom.Point) Route {
	t.Helper()
	r, ok := newRoute(pts)
	require.True(t, ok)

	return r
}

// straightItem builds a routed single-segment item.
func straightItem(t *testing.T, a, b geom.Point, view obstacleView) *batchItem {
	t.Helper()

	return &batchItem{
		start: a, end: b,
		strat: Straight,
		view:  view,
		route: mustRoute(t, []geom.Point{a, b}),
		ok:    true,
	}
}

// zItem builds a routed orthogonal item on the direct midline.
func zItem(t *testing.T, a, b geom.Point, view obstacleView) *batchItem {
	t.Helper()

	return &batchItem{
		start: a, end: b,
		strat: Orthogonal,
		view:  view,
		route: mustRoute(t, zPath(a, b, (a.Y+b.Y)/2)),
		ok:    true,
	}
}

//--------------------------------------//
//                Tests                 //
//--------------------------------------//

// TestCrossingsBetween counts segment-pair intersections.
func TestCrossingsBetween(t *testing.T) {
	vert := mustRoute(t, []geom.Point{geom.Pt(100, 40), geom.Pt(100, 160)})
	z := mustRoute(t, zPath(geom.Pt(0, 80), geom.Pt(200, 120), 100))

	require.Equal(t, 1, crossingsBetween(vert, z))
	require.Equal(t, 1, crossingsBetween(z, vert))

	far := mustRoute(t, []geom.Point{geom.Pt(500, 0), geom.Pt(500, 50)})
	require.Equal(t, 0, crossingsBetween(vert, far))
}

// TestOptimize_RemovesCrossing is the canonical reducible pair: a fixed
// vertical route and a Z whose midline can be pushed past its far end.
// Shifting the Z's horizontal run from y=100 beyond y=160 removes the
// crossing without touching the endpoints.
func TestOptimize_RemovesCrossing(t *testing.T) {
	ix := bareIndex(t)
	a := straightItem(t, geom.Pt(100, 40), geom.Pt(100, 160), ix)
	b := zItem(t, geom.Pt(0, 80), geom.Pt(200, 120), ix)
	items := []*batchItem{a, b}

	require.Equal(t, 1, crossingsBetween(a.route, b.route))

	optimizeCrossings(items, DefaultConfig())
	fillCrossings(items)

	require.Equal(t, 0, crossingsBetween(a.route, b.route))
	require.Equal(t, 0, a.route.Crossings)
	require.Equal(t, 0, b.route.Crossings)

	// The straight route is never rewritten; the Z kept its endpoints.
	require.Equal(t, geom.Pt(100, 40), a.route.Start())
	require.Equal(t, geom.Pt(0, 80), b.route.Start())
	require.Equal(t, geom.Pt(200, 120), b.route.End())
	for _, s := range b.route.Segments {
		seg := geom.Seg(s.Start, s.End)
		require.True(t, seg.IsHorizontal() || seg.IsVertical())
	}
}

// TestOptimize_IrreducibleCrossingStays: the vertical route spans the
// whole shiftable band, so no midline offset can clear it. The crossing
// is kept and reported, not hidden.
func TestOptimize_IrreducibleCrossingStays(t *testing.T) {
	ix := bareIndex(t)
	a := straightItem(t, geom.Pt(100, -1000), geom.Pt(100, 1000), ix)
	b := zItem(t, geom.Pt(0, 80), geom.Pt(200, 120), ix)
	items := []*batchItem{a, b}

	before := b.route
	optimizeCrossings(items, DefaultConfig())
	fillCrossings(items)

	// Geometry untouched (fillCrossings only stamps the count).
	require.Equal(t, before.Segments, b.route.Segments, "no improving shift exists")
	require.Equal(t, 1, a.route.Crossings)
	require.Equal(t, 1, b.route.Crossings)
}

// TestOptimize_ObstaclesWinOverCrossings: the only crossing-free
// midlines are walled off, so the optimizer must keep the crossing
// rather than route through an obstacle.
func TestOptimize_ObstaclesWinOverCrossings(t *testing.T) {
	// Improving shifts need the horizontal run outside y∈[40,160]; the
	// two slabs (default padding 0) block every such run reachable
	// within 8 steps of 16.
	ix := bareIndex(t,
		geom.NewRect(-20, 161, 240, 120), // above
		geom.NewRect(-20, -81, 240, 120), // below
	)
	a := straightItem(t, geom.Pt(100, 40), geom.Pt(100, 160), ix)
	b := zItem(t, geom.Pt(0, 80), geom.Pt(200, 120), ix)
	items := []*batchItem{a, b}

	before := b.route
	optimizeCrossings(items, DefaultConfig())
	fillCrossings(items)

	require.Equal(t, before.Segments, b.route.Segments)
	require.Equal(t, 1, b.route.Crossings)
}

// TestShiftMidline_OnlySimpleOrthogonal: detoured (4+ segment) and
// non-orthogonal routes are never rewritten.
func TestShiftMidline_OnlySimpleOrthogonal(t *testing.T) {
	ix := bareIndex(t)
	a := straightItem(t, geom.Pt(100, 40), geom.Pt(100, 160), ix)

	detour := &batchItem{
		start: geom.Pt(0, 80), end: geom.Pt(200, 120),
		strat: Orthogonal,
		view:  ix,
		route: mustRoute(t, railPath(geom.Pt(0, 80), geom.Pt(200, 120), 100, 60)),
		ok:    true,
	}
	require.Greater(t, len(detour.route.Segments), 3)
	require.False(t, shiftMidline([]*batchItem{a, detour}, 1, DefaultConfig()))

	require.False(t, shiftMidline([]*batchItem{a, a}, 1, DefaultConfig()),
		"straight routes are not shiftable")
}

// TestFillCrossings_SkipsFailed: failed items contribute nothing.
func TestFillCrossings_SkipsFailed(t *testing.T) {
	ix := bareIndex(t)
	a := straightItem(t, geom.Pt(100, 40), geom.Pt(100, 160), ix)
	b := zItem(t, geom.Pt(0, 80), geom.Pt(200, 120), ix)
	failed := &batchItem{}
	items := []*batchItem{a, failed, b}

	fillCrossings(items)
	require.Equal(t, 1, a.route.Crossings)
	require.Equal(t, 1, b.route.Crossings)
}
