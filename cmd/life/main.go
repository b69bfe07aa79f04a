//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifeloop/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	grid, err := cfg.Life().Build()
	if err != nil {
		log.Fatalf("build board: %v", err)
	}

	game := app.New(grid, cfg)

	ebiten.SetWindowTitle("lifeloop")
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowSize(grid.Width()*cfg.Scale, grid.Height()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
