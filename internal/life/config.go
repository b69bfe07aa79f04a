package life

import (
	"fmt"
	"strconv"

	"lifeloop/internal/core"
)

// Config controls how a Grid is built from flags or key/value settings.
type Config struct {
	Width   int
	Height  int
	Density float64
	Seed    int64
	// Pattern names a built-in pattern to center on an otherwise empty
	// board. Empty means a random fill at Density.
	Pattern string
}

// DefaultConfig returns the standard configuration: a 64x64 board with 60%
// of cells alive.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, Density: 0.6, Seed: 42}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	return c
}

// Init returns the initialisation policy described by the config.
func (c Config) Init() (Init, error) {
	if c.Pattern == "" {
		return Random{RNG: core.NewRNG(c.Seed), P: c.Density}, nil
	}
	p, ok := Named(c.Pattern)
	if !ok {
		return nil, fmt.Errorf("%w: unknown pattern %q", ErrInvalidPattern, c.Pattern)
	}
	rows, cols := p.Bounds()
	return p.Offset((c.Height-rows)/2, (c.Width-cols)/2), nil
}

// Build constructs a Grid from the config.
func (c Config) Build() (*Grid, error) {
	initial, err := c.Init()
	if err != nil {
		return nil, err
	}
	return New(c.Width, c.Height, initial)
}
