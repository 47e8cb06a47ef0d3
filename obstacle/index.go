// Package obstacle implements the grid-bucketed spatial index.
//
// The grid maps each shape's padded bounds to the cells it covers;
// a query gathers candidates from the cells covered by the query
// segment's bounding box and tests only those. Cell coordinates are
// floor(x / CellSize), floor(y / CellSize).
package obstacle

import (
	"math"

	"github.com/katalvlaran/connroute/geom"
)

// cellKey addresses one grid bucket.
type cellKey struct{ cx, cy int }

// Index is a read-only spatial view over a shape set. Build it once
// per routing batch; queries are safe for concurrent use.
type Index struct {
	shapes  []Shape
	padded  []geom.Rect
	buckets map[cellKey][]int
	padding float64
	cell    float64
	exclude map[string]struct{} // nil on the base index
}

// NewIndex constructs an Index over shapes. The input slice is
// deep-copied to ensure immutability. An empty shape set is legal and
// yields an index that blocks nothing.
// Returns ErrBadPadding, ErrBadCellSize or ErrDegenerateShape on
// invalid input.
// Complexity: O(S·c) time and memory.
func NewIndex(shapes []Shape, opts Options) (*Index, error) {
	if opts.Padding < 0 {
		return nil, ErrBadPadding
	}
	if opts.CellSize == 0 {
		opts.CellSize = DefaultCellSize
	}
	if opts.CellSize < 0 {
		return nil, ErrBadCellSize
	}

	ix := &Index{
		shapes:  make([]Shape, len(shapes)),
		padded:  make([]geom.Rect, len(shapes)),
		buckets: make(map[cellKey][]int),
		padding: opts.Padding,
		cell:    opts.CellSize,
	}
	copy(ix.shapes, shapes)

	for i, sh := range ix.shapes {
		if sh.Bounds.IsDegenerate() {
			return nil, ErrDegenerateShape
		}
		ix.padded[i] = sh.Bounds.Expand(opts.Padding)
		for _, key := range ix.cellsCovering(ix.padded[i]) {
			ix.buckets[key] = append(ix.buckets[key], i)
		}
	}

	return ix, nil
}

// Padding returns the clearance the index applies around every shape.
func (ix *Index) Padding() float64 { return ix.padding }

// Len returns the number of indexed shapes.
func (ix *Index) Len() int { return len(ix.shapes) }

// Exclude returns a view of the index that ignores the given shape IDs
// (typically the two endpoint shapes of the connector being routed).
// The view shares the underlying buckets; building it is O(k).
func (ix *Index) Exclude(ids ...string) *Index {
	if len(ids) == 0 {
		return ix
	}
	ex := make(map[string]struct{}, len(ix.exclude)+len(ids))
	for id := range ix.exclude {
		ex[id] = struct{}{}
	}
	for _, id := range ids {
		ex[id] = struct{}{}
	}
	view := *ix
	view.exclude = ex

	return &view
}

// Blocked reports whether s passes through the interior of any padded,
// non-excluded obstacle.
// Complexity: O(cells touched + candidates).
func (ix *Index) Blocked(s geom.Segment) bool {
	for _, i := range ix.candidates(s.Bounds()) {
		if geom.SegmentIntersectsRect(s, ix.padded[i]) {
			return true
		}
	}

	return false
}

// PathBlocked reports whether any consecutive pair of pts forms a
// blocked segment. Fewer than two points never block.
func (ix *Index) PathBlocked(pts []geom.Point) bool {
	for i := 0; i+1 < len(pts); i++ {
		if ix.Blocked(geom.Seg(pts[i], pts[i+1])) {
			return true
		}
	}

	return false
}

// FirstBlocking returns the obstacle that s enters first, measured
// parametrically from s.A, and ok=true when s is blocked at all.
// Ties resolve to the lower shape index, keeping the result
// deterministic for identical inputs.
func (ix *Index) FirstBlocking(s geom.Segment) (Shape, bool) {
	best := -1
	bestT := math.Inf(1)
	for _, i := range ix.candidates(s.Bounds()) {
		inner := ix.padded[i].Expand(-geom.Eps)
		if inner.IsDegenerate() {
			continue
		}
		t0, t1, ok := geom.ClipSegmentToRect(s, inner)
		if !ok || t1-t0 <= geom.Eps {
			continue
		}
		if t0 < bestT || (t0 == bestT && i < best) {
			bestT = t0
			best = i
		}
	}
	if best < 0 {
		return Shape{}, false
	}

	return ix.shapes[best], true
}

// candidates gathers the distinct, non-excluded shape indices whose
// buckets intersect bounds, in ascending index order.
func (ix *Index) candidates(bounds geom.Rect) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, key := range ix.cellsCovering(bounds) {
		for _, i := range ix.buckets[key] {
			if _, dup := seen[i]; dup {
				continue
			}
			seen[i] = struct{}{}
			if ix.excluded(ix.shapes[i].ID) {
				continue
			}
			out = append(out, i)
		}
	}
	// Bucket iteration order is map-random; restore index order so that
	// FirstBlocking tie-breaks are stable.
	sortInts(out)

	return out
}

// excluded reports whether a shape ID belongs to the exclusion set.
func (ix *Index) excluded(id string) bool {
	if ix.exclude == nil {
		return false
	}
	_, ok := ix.exclude[id]

	return ok
}

// sortInts is insertion sort; candidate lists are small.
func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}

// cellsCovering returns the keys of every grid cell covered by r.
func (ix *Index) cellsCovering(r geom.Rect) []cellKey {
	x0 := int(math.Floor(r.MinX() / ix.cell))
	x1 := int(math.Floor(r.MaxX() / ix.cell))
	y0 := int(math.Floor(r.MinY() / ix.cell))
	y1 := int(math.Floor(r.MaxY() / ix.cell))

	keys := make([]cellKey, 0, (x1-x0+1)*(y1-y0+1))
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			keys = append(keys, cellKey{cx, cy})
		}
	}

	return keys
}
