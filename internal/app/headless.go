package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"lifeloop/internal/core"
	"lifeloop/internal/frame"
)

// Run drives a board from a ticker at cfg.FPS and writes each frame to out.
// It returns when cfg.Gens generations have run or ctx is done.
func Run(ctx context.Context, cfg *Config, out io.Writer) (frame.Stats, error) {
	grid, err := cfg.Life().Build()
	if err != nil {
		return frame.Stats{}, err
	}

	var writeErr error
	sched := frame.New(grid, frame.WithOnFrame(func(f frame.Frame) {
		if cfg.Quiet || writeErr != nil {
			return
		}
		_, writeErr = fmt.Fprintf(out, "gen %d  pop %d  %.1f tps\n%s\n", grid.Generation(), grid.Population(), f.Rate, grid)
	}))

	var pacer *core.FixedStep
	if cfg.Speed > 0 {
		pacer = core.NewFixedStep(cfg.Speed)
	}
	fps := cfg.FPS
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	sched.Start()
	defer sched.Stop()
	for cfg.Gens <= 0 || grid.Generation() < cfg.Gens {
		select {
		case <-ctx.Done():
			return sched.Stats(), nil
		case now := <-ticker.C:
			if pacer != nil && !pacer.ShouldStep(now) {
				continue
			}
			sched.OnHostTick(now)
			if writeErr != nil {
				return sched.Stats(), fmt.Errorf("write frame: %w", writeErr)
			}
		}
	}
	return sched.Stats(), nil
}
