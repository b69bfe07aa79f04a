// Package life implements Conway's Game of Life on a toroidal grid.
package life

import (
	"errors"
	"fmt"
	"strings"

	"lifeloop/internal/core"
)

// ErrInvalidDimension is returned when a grid is built with a non-positive
// width or height.
var ErrInvalidDimension = errors.New("life: invalid dimension")

// Grid is a Game of Life board with toroidal wrapping. The zero value is not
// usable; construct one with New.
type Grid struct {
	w, h int
	cur  *core.Grid
	nxt  *core.Grid
	gen  int
}

// New returns a w×h grid populated by initial. A nil initial yields an empty board.
func New(w, h int, initial Init) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	g := &Grid{w: w, h: h, cur: core.NewGrid(w, h), nxt: core.NewGrid(w, h)}
	g.Reset(initial)
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Len returns the number of cells, always Width()*Height().
func (g *Grid) Len() int { return len(g.cur.Cells()) }

// Generation returns how many steps have run since construction or the last Reset.
func (g *Grid) Generation() int { return g.gen }

// Population returns the number of live cells.
func (g *Grid) Population() int { return g.cur.Count() }

// Get reports whether the cell at (row, col) is alive. Coordinates wrap.
func (g *Grid) Get(row, col int) bool { return g.cur.At(row, col) }

// Set overwrites the cell at (row, col). Coordinates wrap.
func (g *Grid) Set(row, col int, alive bool) { g.cur.Put(row, col, alive) }

// Toggle flips the cell at (row, col). Coordinates wrap.
func (g *Grid) Toggle(row, col int) { g.cur.Put(row, col, !g.cur.At(row, col)) }

// Reset reinitialises the board in place and rewinds the generation counter.
func (g *Grid) Reset(initial Init) {
	if initial == nil {
		initial = AllDead{}
	}
	g.cur.Clear()
	initial.apply(g.cur)
	g.gen = 0
}

// Snapshot returns a copy of the current cells in row-major order.
func (g *Grid) Snapshot() []bool { return g.cur.Clone() }

// Step advances the simulation by one generation.
func (g *Grid) Step() {
	w, h := g.w, g.h
	cur, nxt := g.cur.Cells(), g.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					if cur[ny*w+nx] {
						neighbors++
					}
				}
			}
			idx := y*w + x
			nxt[idx] = neighbors == 3 || (cur[idx] && neighbors == 2)
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.gen++
}

// String renders the board as plaintext, 'O' for live and '.' for dead.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	cells := g.cur.Cells()
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if cells[y*g.w+x] {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
