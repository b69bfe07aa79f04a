//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifeloop/internal/core"
	"lifeloop/internal/frame"
	"lifeloop/internal/life"
	"lifeloop/internal/render"
	"lifeloop/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life grid and its scheduler to the ebiten.Game interface.
type Game struct {
	grid    *life.Grid
	sched   *frame.Scheduler
	pacer   *core.FixedStep
	painter *render.GridPainter
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	cells   []bool
	scale   int
	density float64
	rng     *core.RNG
}

// New constructs a running Game for the provided grid.
func New(grid *life.Grid, cfg *Config) *Game {
	g := &Game{
		grid:     grid,
		painter:  render.NewGridPainter(grid.Width(), grid.Height()),
		onColor:  color.Black,
		offColor: color.White,
		cells:    grid.Snapshot(),
		scale:    cfg.Scale,
		density:  cfg.Density,
		rng:      core.NewRNG(cfg.Seed),
	}
	g.sched = frame.New(grid, frame.WithOnFrame(func(f frame.Frame) { g.cells = f.Cells }))
	g.overlay = ui.NewOverlay(g.sched)
	if cfg.Speed > 0 {
		g.pacer = core.NewFixedStep(cfg.Speed)
	}
	g.sched.Start()
	return g
}

func (g *Game) edited() { g.cells = g.grid.Snapshot() }

// Update handles per-frame input and forwards the refresh to the scheduler.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.sched.Running() {
			g.sched.Stop()
		} else {
			g.sched.Start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !g.sched.Running() {
		g.grid.Step()
		g.edited()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.grid.Reset(life.Random{RNG: g.rng, P: g.density})
		g.edited()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.grid.Reset(life.AllDead{})
		g.edited()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if row, col, ok := render.CellAt(x, y, g.scale, g.grid.Width(), g.grid.Height()); ok {
			g.grid.Toggle(row, col)
			g.edited()
		}
	}

	g.overlay.Update()

	now := time.Now()
	if g.pacer == nil || g.pacer.ShouldStep(now) {
		g.sched.OnHostTick(now)
	}
	return nil
}

// Draw renders the current board.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.cells, g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.Width() * g.scale, g.grid.Height() * g.scale
}
