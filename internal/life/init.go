package life

import "lifeloop/internal/core"

// DefaultDensity is the live probability used by Random when P is unset or
// out of range.
const DefaultDensity = 0.5

// Init selects how a grid is populated by New and Reset.
type Init interface {
	apply(g *core.Grid)
}

// AllDead leaves every cell dead.
type AllDead struct{}

func (AllDead) apply(*core.Grid) {}

// Random sets each cell alive independently with probability P, drawing from
// RNG. A nil RNG is replaced by a fresh generator seeded with 0 so results
// stay reproducible. Reusing the same RNG across resets yields new boards.
type Random struct {
	RNG *core.RNG
	P   float64
}

func (r Random) apply(g *core.Grid) {
	p := r.P
	if p <= 0 || p > 1 {
		p = DefaultDensity
	}
	rng := r.RNG
	if rng == nil {
		rng = core.NewRNG(0)
	}
	core.FillBernoulli(rng, g.Cells(), p)
}

// Cell is a (row, col) coordinate. Either component may be out of range; it
// wraps onto the board.
type Cell struct {
	Row, Col int
}

// Pattern is a sparse list of live cells. Every cell not listed is dead.
type Pattern []Cell

func (p Pattern) apply(g *core.Grid) {
	for _, c := range p {
		g.Put(c.Row, c.Col, true)
	}
}
