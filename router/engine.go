// Package router - the batch routing engine.
//
// An Engine owns an immutable snapshot: the validated configuration and
// the obstacle index built over the shape set. Each connector routing
// call is then a pure function of that snapshot, so RouteBatch fans
// connectors out across goroutines without locking; only the crossing
// optimizer, which couples routes to each other, runs sequentially.
// Callers must not mutate the shape set concurrently with an in-flight
// batch — the snapshot is copied at construction, so mutation affects
// later Engines only.
package router

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/katalvlaran/connroute/geom"
	"github.com/katalvlaran/connroute/obstacle"
)

// Connection names one connector to route, by shape IDs.
type Connection struct {
	From, To string
}

// Result is the per-connector outcome of a batch: a route or an error,
// never both. A single connector's failure does not abort the batch.
type Result struct {
	Conn  Connection
	Route Route
	Err   error
}

// Metrics summarizes one batch run.
type Metrics struct {
	Connectors int           // connectors requested
	Routed     int           // successfully routed
	Failed     int           // failed with an error
	Crossings  int           // total pairwise route crossings after optimization
	Elapsed    time.Duration // wall time of the batch call
}

// BatchResult carries per-connector results in input order plus the
// batch metrics.
type BatchResult struct {
	Results []Result
	Metrics Metrics
}

// Engine routes connectors over a fixed shape set and configuration.
type Engine struct {
	cfg    Config
	shapes map[string]Shape
	index  *obstacle.Index
}

// New validates cfg and shapes and builds the routing engine.
// Configuration errors (unknown strategy tag, negative padding) and
// shape validation errors (non-positive dimensions, duplicate IDs) are
// reported before any geometry computation.
// Complexity: O(S) validation plus index construction.
func New(shapes []Shape, cfg Config) (*Engine, error) {
	cfg = cfg.normalized()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// Copy the override map: the Engine's view of cfg is immutable.
	if cfg.Overrides != nil {
		overrides := make(map[string]string, len(cfg.Overrides))
		for k, v := range cfg.Overrides {
			overrides[k] = v
		}
		cfg.Overrides = overrides
	}

	byID := make(map[string]Shape, len(shapes))
	obs := make([]obstacle.Shape, 0, len(shapes))
	for _, sh := range shapes {
		if sh.Bounds.IsDegenerate() {
			return nil, fmt.Errorf("%w: %q", ErrDegenerateShape, sh.ID)
		}
		if _, dup := byID[sh.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateShape, sh.ID)
		}
		byID[sh.ID] = sh
		obs = append(obs, obstacle.Shape{ID: sh.ID, Bounds: sh.Bounds})
	}

	idx, err := obstacle.NewIndex(obs, obstacle.Options{Padding: cfg.Padding})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	return &Engine{cfg: cfg, shapes: byID, index: idx}, nil
}

// Config returns the engine's normalized configuration.
func (e *Engine) Config() Config { return e.cfg }

// Route computes a single connector route from one shape to another.
// The route is anchored at the facing edge midpoints of the two shapes
// and avoids every other shape expanded by the configured padding.
func (e *Engine) Route(fromID, toID string) (Route, error) {
	item, err := e.routeConn(Connection{From: fromID, To: toID})
	if err != nil {
		return Route{}, err
	}

	return item.route, nil
}

// RouteBatch routes every connector, in parallel, then optionally runs
// the crossing optimizer and fills per-route crossing counts. Results
// are returned in input order regardless of scheduling.
func (e *Engine) RouteBatch(conns []Connection) BatchResult {
	began := time.Now()

	items := make([]*batchItem, len(conns))
	errs := make([]error, len(conns))

	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	for i := range conns {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			item, err := e.routeConn(conns[i])
			items[i], errs[i] = item, err
		}(i)
	}
	wg.Wait()

	if e.cfg.OptimizeCrossings {
		optimizeCrossings(items, e.cfg)
	}
	fillCrossings(items)

	out := BatchResult{
		Results: make([]Result, len(conns)),
		Metrics: Metrics{Connectors: len(conns)},
	}
	for i, c := range conns {
		res := Result{Conn: c, Err: errs[i]}
		if errs[i] == nil {
			res.Route = items[i].route
			out.Metrics.Routed++
			out.Metrics.Crossings += res.Route.Crossings
		} else {
			out.Metrics.Failed++
		}
		out.Results[i] = res
	}
	// Every crossing was counted once per participating route.
	out.Metrics.Crossings /= 2
	out.Metrics.Elapsed = time.Since(began)

	return out
}

// routeConn resolves shapes, anchors, strategy and obstacle view for
// one connector and routes it. The returned batchItem is valid even on
// error (ok=false) so batch bookkeeping stays uniform.
func (e *Engine) routeConn(c Connection) (*batchItem, error) {
	fail := func(err error) (*batchItem, error) { return &batchItem{}, err }

	from, ok := e.shapes[c.From]
	if !ok {
		return fail(fmt.Errorf("%w: %q", ErrShapeNotFound, c.From))
	}
	to, ok := e.shapes[c.To]
	if !ok {
		return fail(fmt.Errorf("%w: %q", ErrShapeNotFound, c.To))
	}

	strat, err := SelectStrategy(e.cfg, from, to)
	if err != nil {
		return fail(err)
	}

	start, end := anchorPoints(from, to, e.cfg.SnapStep)
	if geom.SamePoint(start, end) {
		return fail(fmt.Errorf("connector %q→%q: %w", c.From, c.To, ErrSamePoint))
	}

	view := e.index.Exclude(c.From, c.To)
	route, err := RoutePoints(start, end, strat, view, e.cfg)
	if err != nil {
		return fail(fmt.Errorf("connector %q→%q: %w", c.From, c.To, err))
	}

	return &batchItem{
		start: start,
		end:   end,
		strat: strat,
		view:  view,
		route: route,
		ok:    true,
	}, nil
}

// anchorPoints picks the midpoint of each shape's edge facing the
// other shape: left/right edges when the centers are separated mostly
// horizontally, top/bottom edges otherwise. With snap > 0 both anchors
// are rounded to the snap grid.
func anchorPoints(from, to Shape, snap float64) (start, end geom.Point) {
	fc, tc := from.Bounds.Center(), to.Bounds.Center()
	dx, dy := tc.X-fc.X, tc.Y-fc.Y

	if math.Abs(dx) >= math.Abs(dy) {
		if dx >= 0 {
			start = geom.Pt(from.Bounds.MaxX(), fc.Y)
			end = geom.Pt(to.Bounds.MinX(), tc.Y)
		} else {
			start = geom.Pt(from.Bounds.MinX(), fc.Y)
			end = geom.Pt(to.Bounds.MaxX(), tc.Y)
		}
	} else {
		if dy >= 0 {
			start = geom.Pt(fc.X, from.Bounds.MaxY())
			end = geom.Pt(tc.X, to.Bounds.MinY())
		} else {
			start = geom.Pt(fc.X, from.Bounds.MinY())
			end = geom.Pt(tc.X, to.Bounds.MaxY())
		}
	}
	if snap > 0 {
		start = snapPoint(start, snap)
		end = snapPoint(end, snap)
	}

	return start, end
}

// snapPoint rounds both coordinates to the nearest multiple of step.
func snapPoint(p geom.Point, step float64) geom.Point {
	return geom.Pt(math.Round(p.X/step)*step, math.Round(p.Y/step)*step)
}
