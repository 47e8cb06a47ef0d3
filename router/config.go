// Package router - routing configuration and its YAML form.
//
// A Config is constructed in Go code (start from DefaultConfig) or
// loaded from YAML via ParseConfig / LoadConfig. It is validated once
// up front — before any geometry work — and treated as immutable for
// the lifetime of an Engine; the Engine copies the override map so
// later caller mutations cannot leak in.
package router

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OverridePolicy names the tie-break applied when both connected
// shapes carry a strategy override. The policy is explicit because the
// outcome is direction-dependent: A→B and B→A may resolve differently.
type OverridePolicy string

const (
	// EndShapeWins applies the start-shape override, then lets the
	// end-shape override replace it. This is the default.
	EndShapeWins OverridePolicy = "end_shape_wins"
	// StartShapeWins applies the end-shape override, then lets the
	// start-shape override replace it.
	StartShapeWins OverridePolicy = "start_shape_wins"
)

// Default detour search bounds and curve shape.
const (
	DefaultMaxDetourAttempts = 8
	DefaultDetourStep        = 16.0
	DefaultCurveTension      = 0.25
)

// Config declares how connectors are routed: the default strategy tag,
// per-shape-type overrides with their tie-break policy, obstacle
// padding, the crossing-optimization flag, the orthogonal detour
// bounds, the curve tension and the optional anchor snap grid.
type Config struct {
	// DefaultStrategy is the strategy tag used when no override applies.
	DefaultStrategy string `yaml:"default_strategy"`

	// Overrides maps a shape-type tag to a strategy tag.
	Overrides map[string]string `yaml:"shape_type_overrides"`

	// OverridePolicy is the tie-break when both connected shapes carry
	// an override. Empty means EndShapeWins.
	OverridePolicy OverridePolicy `yaml:"override_policy"`

	// Padding is the clearance around every obstacle. Must be ≥ 0.
	Padding float64 `yaml:"padding"`

	// OptimizeCrossings enables the pairwise crossing optimizer after
	// batch routing.
	OptimizeCrossings bool `yaml:"optimize_crossings"`

	// MaxDetourAttempts caps the orthogonal detour search. Must be > 0.
	MaxDetourAttempts int `yaml:"max_detour_attempts"`

	// DetourStep is the offset added per detour attempt. Must be > 0.
	DetourStep float64 `yaml:"detour_step"`

	// CurveTension scales the perpendicular control-point offset of the
	// Curved strategy. Must be > 0.
	CurveTension float64 `yaml:"curve_tension"`

	// SnapStep snaps connector anchor points to a grid; 0 disables.
	SnapStep float64 `yaml:"snap_step"`
}

// DefaultConfig returns a Config with orthogonal routing, no overrides,
// zero padding, optimization off, and the default search bounds.
func DefaultConfig() Config {
	return Config{
		DefaultStrategy:   TagOrthogonal,
		OverridePolicy:    EndShapeWins,
		MaxDetourAttempts: DefaultMaxDetourAttempts,
		DetourStep:        DefaultDetourStep,
		CurveTension:      DefaultCurveTension,
	}
}

// normalized returns c with zero-valued tunables replaced by defaults.
// Explicitly invalid values are left for Validate to reject.
func (c Config) normalized() Config {
	if c.OverridePolicy == "" {
		c.OverridePolicy = EndShapeWins
	}
	if c.MaxDetourAttempts == 0 {
		c.MaxDetourAttempts = DefaultMaxDetourAttempts
	}
	if c.DetourStep == 0 {
		c.DetourStep = DefaultDetourStep
	}
	if c.CurveTension == 0 {
		c.CurveTension = DefaultCurveTension
	}

	return c
}

// Validate checks every tag and bound. It runs before any geometry
// computation, so a malformed configuration fails the whole call
// immediately rather than partway through a batch.
func (c Config) Validate() error {
	if _, err := ParseStrategy(c.DefaultStrategy); err != nil {
		return fmt.Errorf("default strategy: %w", err)
	}
	for typeTag, stratTag := range c.Overrides {
		if _, err := ParseStrategy(stratTag); err != nil {
			return fmt.Errorf("override for shape type %q: %w", typeTag, err)
		}
	}
	switch c.OverridePolicy {
	case EndShapeWins, StartShapeWins:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPolicy, c.OverridePolicy)
	}
	if c.Padding < 0 {
		return ErrBadPadding
	}
	if c.MaxDetourAttempts <= 0 || c.DetourStep <= 0 {
		return ErrBadDetour
	}
	if c.CurveTension <= 0 {
		return ErrBadTension
	}
	if c.SnapStep < 0 {
		return ErrBadSnap
	}

	return nil
}

// ParseConfig decodes a YAML document into a validated Config.
// Omitted tunables take their defaults; an omitted default strategy is
// an error (there is no silent fallback).
func ParseConfig(data []byte) (Config, error) {
	cfg := Config{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	cfg = cfg.normalized()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	return ParseConfig(data)
}
