// Package router - strategy selection.
//
// Resolution starts from the configured default and lets shape-type
// overrides replace it. When both shapes carry an override the
// configured OverridePolicy decides which one wins; the tie-break is a
// named, documented policy precisely because the relation is not
// symmetric: with EndShapeWins, routing A→B and B→A may select
// different strategies when both types are overridden.
package router

import "fmt"

// SelectStrategy resolves the strategy for a connector from start to
// end under cfg. Resolution order: default, then the loser override,
// then the winner override per cfg.OverridePolicy (EndShapeWins by
// default). An unknown strategy tag anywhere fails with
// ErrUnknownStrategy before any geometry computation.
// Complexity: O(1).
func SelectStrategy(cfg Config, start, end Shape) (Strategy, error) {
	cfg = cfg.normalized()
	tag := cfg.DefaultStrategy

	first, second := start.Type, end.Type
	if cfg.OverridePolicy == StartShapeWins {
		first, second = end.Type, start.Type
	}
	if t, ok := cfg.Overrides[first]; ok {
		tag = t
	}
	if t, ok := cfg.Overrides[second]; ok {
		tag = t
	}

	s, err := ParseStrategy(tag)
	if err != nil {
		return 0, fmt.Errorf("selecting strategy for %q→%q: %w", start.ID, end.ID, err)
	}

	return s, nil
}
