package crfpack

import "github.com/katalvlaran/crfpack/config"

// Config controls one package construction. The zero value equals
// DefaultConfig(): grouping on, repeated edges accepted, default BP bound.
type Config struct {
	// OverrideAttribCount replaces the vocabulary's attribute count when set.
	OverrideAttribCount *int

	// SkipGrouping turns off node grouping for the recurrent bridge.
	// Pure-CRF inference and training set it.
	SkipGrouping bool

	// MaxBPIter bounds belief propagation; 0 selects config.DefaultMaxBPIter.
	MaxBPIter int

	// RejectMultiEdges fails the build on a repeated edge between one node pair.
	RejectMultiEdges bool
}

// DefaultConfig returns the zero Config.
func DefaultConfig() Config { return Config{} }

// ConfigFromSettings builds a Config from loaded settings, with grouping on.
func ConfigFromSettings(s config.Settings) Config {
	return Config{
		MaxBPIter:        s.MaxBPIter,
		RejectMultiEdges: !s.AllowMultiEdges,
	}
}

// WithAttribCount returns a copy of c overriding the attribute count.
func (c Config) WithAttribCount(n int) Config {
	c.OverrideAttribCount = &n

	return c
}

// WithoutGrouping returns a copy of c with grouping disabled.
func (c Config) WithoutGrouping() Config {
	c.SkipGrouping = true

	return c
}

func (c Config) maxBPIter() int {
	if c.MaxBPIter == 0 {
		return config.DefaultMaxBPIter
	}

	return c.MaxBPIter
}
