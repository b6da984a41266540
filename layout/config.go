package layout

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config carries the tunable constants of the layout pass. The zero
// value is not usable; start from DefaultConfig.
type Config struct {
	// Epsilon is the main-axis slack below which flow distribution stops
	// iterating.
	Epsilon float32 `toml:"epsilon"`
	// MaxFillIterations caps the water-filling rounds in flow
	// distribution.
	MaxFillIterations int `toml:"max_fill_iterations"`
	// MaxDepth bounds tree nesting; exceeding it fails the pass.
	MaxDepth int `toml:"max_depth"`
	// LogLevel sets the diagnostic logger level (debug, info, warn,
	// error).
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the engine's built-in tuning.
func DefaultConfig() Config {
	return Config{
		Epsilon:           0.01,
		MaxFillIterations: 16,
		MaxDepth:          256,
		LogLevel:          "warn",
	}
}

// LoadConfig reads a TOML config file. Keys absent from the file keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg.withDefaults(), nil
}

// withDefaults backfills unset or nonsensical fields.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Epsilon <= 0 {
		c.Epsilon = def.Epsilon
	}
	if c.MaxFillIterations <= 0 {
		c.MaxFillIterations = def.MaxFillIterations
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = def.MaxDepth
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	return c
}
