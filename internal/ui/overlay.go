//go:build ebiten

package ui

import (
	"fmt"

	"lifeloop/internal/frame"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// StatsSource is what the overlay reads each frame.
type StatsSource interface {
	Running() bool
	CurrentRate() float64
	Stats() frame.Stats
}

// Overlay draws the frame-rate panel on top of the board.
type Overlay struct {
	src  StatsSource
	show bool
}

// NewOverlay constructs a new overlay reading from src.
func NewOverlay(src StatsSource) *Overlay {
	return &Overlay{src: src, show: true}
}

// Update toggles visibility on F.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.show = !o.show
	}
}

// Draw renders the panel when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.src == nil {
		return
	}
	state := "running"
	if !o.src.Running() {
		state = "stopped"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  %.1f tps\n%s", state, o.src.CurrentRate(), o.src.Stats()))
}
