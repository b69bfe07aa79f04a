package app

import (
	"flag"

	"lifeloop/internal/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Density float64
	Seed    int64
	Pattern string

	Scale int
	// FPS is the host refresh rate the scheduler is driven at.
	FPS int
	// Speed caps generations per second below FPS. Zero steps on every refresh.
	Speed int
	// Gens stops the headless host after that many generations. Zero runs
	// until interrupted.
	Gens  int
	Quiet bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	lc := life.DefaultConfig()
	return &Config{
		Width:   lc.Width,
		Height:  lc.Height,
		Density: lc.Density,
		Seed:    lc.Seed,
		Scale:   8,
		FPS:     60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "live probability for random boards")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern to center instead of a random fill")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.FPS, "fps", c.FPS, "host refresh rate")
	fs.IntVar(&c.Speed, "speed", c.Speed, "maximum generations per second (0 = one per refresh)")
	fs.IntVar(&c.Gens, "gens", c.Gens, "stop after this many generations (0 = run until interrupted)")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "suppress per-frame board output")
}

// Life returns the engine configuration described by c.
func (c *Config) Life() life.Config {
	return life.Config{
		Width:   c.Width,
		Height:  c.Height,
		Density: c.Density,
		Seed:    c.Seed,
		Pattern: c.Pattern,
	}
}
