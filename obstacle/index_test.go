package obstacle_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/connroute/geom"
	"github.com/katalvlaran/connroute/obstacle"
)

// fixture: three shapes in a row along y=0..20.
func testShapes() []obstacle.Shape {
	return []obstacle.Shape{
		{ID: "a", Bounds: geom.NewRect(0, 0, 20, 20)},
		{ID: "b", Bounds: geom.NewRect(50, 0, 20, 20)},
		{ID: "c", Bounds: geom.NewRect(100, 0, 20, 20)},
	}
}

// TestNewIndex_Errors verifies option and shape validation.
func TestNewIndex_Errors(t *testing.T) {
	cases := []struct {
		name   string
		shapes []obstacle.Shape
		opts   obstacle.Options
		err    error
	}{
		{"NegativePadding", testShapes(), obstacle.Options{Padding: -1, CellSize: 64}, obstacle.ErrBadPadding},
		{"NegativeCellSize", testShapes(), obstacle.Options{Padding: 0, CellSize: -4}, obstacle.ErrBadCellSize},
		{"DegenerateShape", []obstacle.Shape{{ID: "z", Bounds: geom.NewRect(0, 0, 0, 5)}}, obstacle.DefaultOptions(), obstacle.ErrDegenerateShape},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := obstacle.NewIndex(tc.shapes, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewIndex error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestIndex_EmptySet checks that an empty index never blocks.
func TestIndex_EmptySet(t *testing.T) {
	ix, err := obstacle.NewIndex(nil, obstacle.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 0, ix.Len())
	require.False(t, ix.Blocked(geom.Seg(geom.Pt(-100, -100), geom.Pt(100, 100))))
}

// TestIndex_Blocked exercises padded and unpadded segment queries.
func TestIndex_Blocked(t *testing.T) {
	ix, err := obstacle.NewIndex(testShapes(), obstacle.DefaultOptions())
	require.NoError(t, err)

	// Horizontal line through all three shapes.
	require.True(t, ix.Blocked(geom.Seg(geom.Pt(-10, 10), geom.Pt(130, 10))))
	// Gap between a and b.
	require.False(t, ix.Blocked(geom.Seg(geom.Pt(30, -10), geom.Pt(30, 30))))
	// Above everything.
	require.False(t, ix.Blocked(geom.Seg(geom.Pt(-10, 40), geom.Pt(130, 40))))

	// With padding 15 the 30-unit gap between a and b closes.
	padded, err := obstacle.NewIndex(testShapes(), obstacle.Options{Padding: 15})
	require.NoError(t, err)
	require.Equal(t, 15.0, padded.Padding())
	require.True(t, padded.Blocked(geom.Seg(geom.Pt(30, -50), geom.Pt(30, 50))))
}

// TestIndex_PathBlocked checks the polyline form.
func TestIndex_PathBlocked(t *testing.T) {
	ix, err := obstacle.NewIndex(testShapes(), obstacle.DefaultOptions())
	require.NoError(t, err)

	clear := []geom.Point{geom.Pt(-10, 30), geom.Pt(130, 30), geom.Pt(130, 40)}
	require.False(t, ix.PathBlocked(clear))

	blocked := []geom.Point{geom.Pt(-10, 30), geom.Pt(-10, 10), geom.Pt(130, 10)}
	require.True(t, ix.PathBlocked(blocked))

	require.False(t, ix.PathBlocked([]geom.Point{geom.Pt(10, 10)}), "single point never blocks")
}

// TestIndex_Exclude verifies endpoint exclusion views.
func TestIndex_Exclude(t *testing.T) {
	ix, err := obstacle.NewIndex(testShapes(), obstacle.DefaultOptions())
	require.NoError(t, err)

	through := geom.Seg(geom.Pt(-10, 10), geom.Pt(130, 10))
	view := ix.Exclude("a", "c")
	require.True(t, view.Blocked(through), "b still blocks")
	require.True(t, ix.Blocked(through), "base index is untouched")

	all := view.Exclude("b")
	require.False(t, all.Blocked(through), "exclusions accumulate")
}

// TestIndex_FirstBlocking checks nearest-obstacle selection and determinism.
func TestIndex_FirstBlocking(t *testing.T) {
	ix, err := obstacle.NewIndex(testShapes(), obstacle.DefaultOptions())
	require.NoError(t, err)

	s := geom.Seg(geom.Pt(-10, 10), geom.Pt(130, 10))
	sh, ok := ix.FirstBlocking(s)
	require.True(t, ok)
	require.Equal(t, "a", sh.ID)

	// Reversed direction hits c first.
	sh, ok = ix.FirstBlocking(geom.Seg(s.B, s.A))
	require.True(t, ok)
	require.Equal(t, "c", sh.ID)

	// Excluding a reveals b.
	sh, ok = ix.Exclude("a").FirstBlocking(s)
	require.True(t, ok)
	require.Equal(t, "b", sh.ID)

	_, ok = ix.FirstBlocking(geom.Seg(geom.Pt(-10, 40), geom.Pt(130, 40)))
	require.False(t, ok)

	// Identical queries must agree run to run.
	for i := 0; i < 10; i++ {
		again, ok2 := ix.FirstBlocking(s)
		require.True(t, ok2)
		require.Equal(t, "a", again.ID)
	}
}
