// Package obstacle defines the Shape input type, Options, and sentinel
// errors for the spatial index.
package obstacle

import (
	"errors"

	"github.com/katalvlaran/connroute/geom"
)

// Sentinel errors for index construction.
var (
	// ErrBadPadding indicates a negative obstacle padding.
	ErrBadPadding = errors.New("obstacle: padding must be non-negative")
	// ErrBadCellSize indicates a non-positive grid cell size.
	ErrBadCellSize = errors.New("obstacle: cell size must be positive")
	// ErrDegenerateShape indicates a shape with non-positive dimensions.
	ErrDegenerateShape = errors.New("obstacle: shape has non-positive width or height")
)

// Shape is the minimal obstacle view of a diagram shape: an identity
// and its bounding rectangle. The index never mutates or retains the
// caller's richer shape model.
type Shape struct {
	ID     string
	Bounds geom.Rect
}

// DefaultCellSize is the bucket edge length used when Options.CellSize
// is left zero.
const DefaultCellSize = 64.0

// Options contains tunable parameters for index construction.
type Options struct {
	// Padding is the clearance added symmetrically around every shape
	// before intersection testing. Must be ≥ 0.
	Padding float64
	// CellSize is the edge length of grid buckets. Must be > 0.
	CellSize float64
}

// DefaultOptions returns Options with zero padding and the default
// cell size.
func DefaultOptions() Options {
	return Options{Padding: 0, CellSize: DefaultCellSize}
}
