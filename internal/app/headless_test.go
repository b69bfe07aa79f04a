package app

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"strings"
	"testing"
	"time"

	"lifeloop/internal/life"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "12", "-h", "7", "-pattern", "glider", "-gens", "3", "-quiet"}); err != nil {
		t.Fatal(err)
	}
	lc := cfg.Life()
	if lc.Width != 12 || lc.Height != 7 || lc.Pattern != "glider" {
		t.Fatalf("unexpected life config %+v", lc)
	}
	if cfg.Gens != 3 || !cfg.Quiet || cfg.FPS != 60 {
		t.Fatalf("unexpected host config %+v", cfg)
	}
}

func TestRunStopsAfterGens(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 5, 5
	cfg.Pattern = "blinker"
	cfg.FPS = 500
	cfg.Gens = 3

	var out bytes.Buffer
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := Run(ctx, cfg, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	text := out.String()
	if n := strings.Count(text, "gen "); n != 3 {
		t.Fatalf("printed %d frames, want 3:\n%s", n, text)
	}
	last := text[strings.LastIndex(text, "gen 3"):]
	if !strings.Contains(last, "..O..\n..O..\n..O..") {
		t.Fatalf("blinker should be vertical after 3 generations:\n%s", last)
	}
}

func TestRunHonorsContext(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 8, 8
	cfg.FPS = 200
	cfg.Quiet = true

	var out bytes.Buffer
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := Run(ctx, cfg, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("quiet run wrote output: %q", out.String())
	}
}

func TestRunRejectsBadBoard(t *testing.T) {
	cfg := NewConfig()
	cfg.Pattern = "unknown"
	if _, err := Run(context.Background(), cfg, &bytes.Buffer{}); !errors.Is(err, life.ErrInvalidPattern) {
		t.Fatalf("err = %v, want ErrInvalidPattern", err)
	}
}
