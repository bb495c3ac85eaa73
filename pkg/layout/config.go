package layout

import (
	"errors"
	"fmt"

	"github.com/cfgviz/cfgviz/pkg/cfg"
)

// ErrInvalidConfig wraps every configuration validation failure so callers
// can test for the category with errors.Is.
var ErrInvalidConfig = errors.New("invalid layout config")

// MeasureFunc derives a node's drawn size from its block content. It is
// consulted only for nodes whose source supplied no explicit size hint.
type MeasureFunc func(cfg.Block) (w, h float64)

// Config controls spacing and the crossing-reduction effort of the layout
// engine. The zero value is not usable; start from [DefaultConfig].
type Config struct {
	// LayerSpacing is the vertical gap between consecutive layers.
	LayerSpacing float64

	// NodeSpacing is the horizontal gap between neighboring nodes in a layer.
	NodeSpacing float64

	// ComponentSpacing is the horizontal gap between disconnected components.
	ComponentSpacing float64

	// CrossingPasses is the number of barycenter sweeps. Zero keeps the
	// initial discovery order.
	CrossingPasses int

	// BackEdgeOffset is the base lane offset for back-edge return arcs. Each
	// further back edge in a component moves one more offset outward, so
	// parallel arcs never coincide.
	BackEdgeOffset float64

	// Measure sizes nodes without an explicit hint. Nil falls back to the
	// default node style. Changing the function after a panel cached layouts
	// is not detected; use one measure per panel.
	Measure MeasureFunc `toml:"-"`
}

// IsZero reports whether every option is unset. Useful for "default unless
// configured" call sites; Config has a func field and is not comparable.
func (c Config) IsZero() bool {
	return c.LayerSpacing == 0 && c.NodeSpacing == 0 && c.ComponentSpacing == 0 &&
		c.CrossingPasses == 0 && c.BackEdgeOffset == 0 && c.Measure == nil
}

// DefaultConfig returns the implementation-chosen defaults.
func DefaultConfig() Config {
	return Config{
		LayerSpacing:     40,
		NodeSpacing:      24,
		ComponentSpacing: 60,
		CrossingPasses:   4,
		BackEdgeOffset:   18,
	}
}

// Validate rejects degenerate geometry up front so layout computation never
// has to cope with it. All violations wrap [ErrInvalidConfig].
func (c Config) Validate() error {
	if c.LayerSpacing <= 0 {
		return fmt.Errorf("%w: layer spacing must be > 0, got %v", ErrInvalidConfig, c.LayerSpacing)
	}
	if c.NodeSpacing <= 0 {
		return fmt.Errorf("%w: node spacing must be > 0, got %v", ErrInvalidConfig, c.NodeSpacing)
	}
	if c.ComponentSpacing <= 0 {
		return fmt.Errorf("%w: component spacing must be > 0, got %v", ErrInvalidConfig, c.ComponentSpacing)
	}
	if c.CrossingPasses < 0 {
		return fmt.Errorf("%w: crossing passes must be >= 0, got %d", ErrInvalidConfig, c.CrossingPasses)
	}
	if c.BackEdgeOffset <= 0 {
		return fmt.Errorf("%w: back edge offset must be > 0, got %v", ErrInvalidConfig, c.BackEdgeOffset)
	}
	return nil
}
