//go:build !ebiten

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"lifeloop/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := app.Run(ctx, cfg, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprint(os.Stderr, stats)
}
