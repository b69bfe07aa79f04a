// Package frame turns host refresh callbacks into simulation ticks and
// measures the rate at which they are achieved.
//
// A Scheduler never blocks, starts goroutines or takes locks. The host owns
// cadence: it calls OnHostTick once per display refresh (or whatever pacing it
// chooses) and must serialize calls itself.
package frame

import "time"

// DefaultWindow is the wall-clock span over which a rate is measured.
const DefaultWindow = time.Second

// Stepper is the engine a Scheduler drives.
type Stepper interface {
	Step()
	Snapshot() []bool
}

// Frame is published once per tick.
type Frame struct {
	// ID increments on every tick for the lifetime of the scheduler.
	ID uint64
	// Cells is a copy of the engine state after the tick.
	Cells []bool
	// Rate is the last completed window's ticks per second.
	Rate float64
	// RateUpdated is set on the tick that closed a measurement window.
	RateUpdated bool
	At          time.Time
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithWindow sets the reporting threshold. Non-positive values are ignored.
func WithWindow(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.window = d
		}
	}
}

// WithOnFrame registers a callback invoked with every published frame.
func WithOnFrame(fn func(Frame)) Option {
	return func(s *Scheduler) { s.onFrame = fn }
}

// WithOnRate registers a callback invoked each time a window completes.
func WithOnRate(fn func(float64)) Option {
	return func(s *Scheduler) { s.onRate = fn }
}

// WithHistory sets how many per-frame rate samples Stats keeps.
func WithHistory(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.stats = newHistory(n)
		}
	}
}

// Scheduler advances a Stepper once per host tick while running.
type Scheduler struct {
	engine  Stepper
	window  time.Duration
	onFrame func(Frame)
	onRate  func(float64)

	running     bool
	ticks       int
	windowStart time.Time
	lastTick    time.Time
	rate        float64
	frameID     uint64
	stats       *history
}

// New returns a stopped Scheduler driving engine.
func New(engine Stepper, opts ...Option) *Scheduler {
	s := &Scheduler{engine: engine, window: DefaultWindow}
	for _, opt := range opts {
		opt(s)
	}
	if s.stats == nil {
		s.stats = newHistory(defaultHistory)
	}
	return s
}

// Start begins producing ticks and clears all measurement state. Calling it
// while running only clears the counters.
func (s *Scheduler) Start() {
	s.running = true
	s.ticks = 0
	s.windowStart = time.Time{}
	s.lastTick = time.Time{}
	s.rate = 0
	s.stats.reset()
}

// Stop halts tick production. Counters are kept as they are.
func (s *Scheduler) Stop() { s.running = false }

// Running reports whether ticks are being produced.
func (s *Scheduler) Running() bool { return s.running }

// CurrentRate returns the last measured ticks per second, or 0 before the
// first window completes.
func (s *Scheduler) CurrentRate() float64 { return s.rate }

// Stats summarises the recent per-frame rates.
func (s *Scheduler) Stats() Stats { return s.stats.summary() }

// OnHostTick steps the engine once and publishes the resulting frame. It
// reports false, and does nothing, when the scheduler is stopped.
func (s *Scheduler) OnHostTick(now time.Time) (Frame, bool) {
	if !s.running {
		return Frame{}, false
	}
	s.engine.Step()

	if s.windowStart.IsZero() {
		s.windowStart = now
	}
	if !s.lastTick.IsZero() {
		if d := now.Sub(s.lastTick); d > 0 {
			s.stats.push(float64(time.Second) / float64(d))
		}
	}
	s.lastTick = now
	s.ticks++

	updated := false
	if elapsed := now.Sub(s.windowStart); elapsed >= s.window && elapsed > 0 {
		s.rate = float64(s.ticks) / elapsed.Seconds()
		s.ticks = 0
		s.windowStart = now
		updated = true
	}

	s.frameID++
	f := Frame{
		ID:          s.frameID,
		Cells:       s.engine.Snapshot(),
		Rate:        s.rate,
		RateUpdated: updated,
		At:          now,
	}
	if updated && s.onRate != nil {
		s.onRate(s.rate)
	}
	if s.onFrame != nil {
		s.onFrame(f)
	}
	return f, true
}
