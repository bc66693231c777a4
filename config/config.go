// Package config loads CRF construction settings from TOML.
//
// Example file:
//
//	[crf]
//	max_bp_iter = 50
//	allow_multi_edges = true
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultMaxBPIter is the belief-propagation iteration bound used when unset.
	DefaultMaxBPIter = 50
)

// ErrInvalidSettings indicates a settings file that decodes but cannot be used.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Settings are the CRF construction settings.
type Settings struct {
	MaxBPIter       int  `toml:"max_bp_iter"`
	AllowMultiEdges bool `toml:"allow_multi_edges"`
}

type tomlConfig struct {
	CRF Settings `toml:"crf"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{MaxBPIter: DefaultMaxBPIter, AllowMultiEdges: true}
}

// Validate reports whether s is usable.
func (s Settings) Validate() error {
	if s.MaxBPIter < 1 {
		return fmt.Errorf("%w: max_bp_iter must be >= 1, got %d", ErrInvalidSettings, s.MaxBPIter)
	}

	return nil
}

// Load reads settings from the TOML file at path. Keys missing from the file
// keep their Default values; unknown keys are rejected.
func Load(path string) (Settings, error) {
	tc := tomlConfig{CRF: Default()}
	md, err := toml.DecodeFile(path, &tc)
	if err != nil {
		return Settings{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}

	return finish(md, tc)
}

// Decode parses settings from TOML text with the same rules as Load.
func Decode(data string) (Settings, error) {
	tc := tomlConfig{CRF: Default()}
	md, err := toml.Decode(data, &tc)
	if err != nil {
		return Settings{}, fmt.Errorf("config: decoding: %w", err)
	}

	return finish(md, tc)
}

func finish(md toml.MetaData, tc tomlConfig) (Settings, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Settings{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidSettings, strings.Join(keys, ", "))
	}
	if err := tc.CRF.Validate(); err != nil {
		return Settings{}, err
	}

	return tc.CRF, nil
}
