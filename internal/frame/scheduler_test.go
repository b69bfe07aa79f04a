package frame

import (
	"math"
	"slices"
	"strings"
	"testing"
	"time"

	"lifeloop/internal/life"
)

type countingEngine struct {
	steps int
}

func (c *countingEngine) Step()            { c.steps++ }
func (c *countingEngine) Snapshot() []bool { return []bool{c.steps%2 == 1} }

var t0 = time.Unix(1700000000, 0)

func TestStoppedByDefault(t *testing.T) {
	eng := &countingEngine{}
	s := New(eng)
	if s.Running() {
		t.Fatal("new scheduler should be stopped")
	}
	if _, ok := s.OnHostTick(t0); ok {
		t.Fatal("stopped scheduler produced a frame")
	}
	if eng.steps != 0 {
		t.Fatalf("engine stepped %d times while stopped", eng.steps)
	}
}

func TestTenTicksOverOneSecond(t *testing.T) {
	eng := &countingEngine{}
	var rates []float64
	s := New(eng, WithOnRate(func(r float64) { rates = append(rates, r) }))
	s.Start()

	updates := 0
	for i := 0; i < 10; i++ {
		f, ok := s.OnHostTick(t0.Add(time.Duration(i) * time.Second / 9))
		if !ok {
			t.Fatalf("tick %d not produced", i)
		}
		if f.RateUpdated {
			updates++
		}
		if i < 9 && s.CurrentRate() != 0 {
			t.Fatalf("rate published early at tick %d: %v", i, s.CurrentRate())
		}
	}
	if updates != 1 || len(rates) != 1 {
		t.Fatalf("got %d frame updates and %d rate callbacks, want 1 each", updates, len(rates))
	}
	if rates[0] != 10.0 || s.CurrentRate() != 10.0 {
		t.Fatalf("rate = %v, want 10", rates[0])
	}
	if eng.steps != 10 {
		t.Fatalf("engine stepped %d times, want 10", eng.steps)
	}
}

func TestEveryTickStepsOnceAndPublishes(t *testing.T) {
	eng := &countingEngine{}
	var frames []Frame
	s := New(eng, WithOnFrame(func(f Frame) { frames = append(frames, f) }))
	s.Start()
	for i := 0; i < 3; i++ {
		s.OnHostTick(t0.Add(time.Duration(i) * 16 * time.Millisecond))
	}
	if len(frames) != 3 || eng.steps != 3 {
		t.Fatalf("frames=%d steps=%d, want 3 and 3", len(frames), eng.steps)
	}
	for i, f := range frames {
		if f.ID != uint64(i+1) {
			t.Fatalf("frame %d has ID %d", i, f.ID)
		}
	}
	if !frames[0].Cells[0] || frames[1].Cells[0] {
		t.Fatal("frames should carry the post-step snapshot")
	}
}

func TestStopFreezesGrid(t *testing.T) {
	g, err := life.New(5, 5, life.Pattern{{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2}})
	if err != nil {
		t.Fatal(err)
	}
	s := New(g)
	s.Start()
	s.OnHostTick(t0)
	s.OnHostTick(t0.Add(time.Second))
	rate := s.CurrentRate()
	s.Stop()

	before := g.Snapshot()
	for i := 2; i < 6; i++ {
		if _, ok := s.OnHostTick(t0.Add(time.Duration(i) * time.Second)); ok {
			t.Fatal("stopped scheduler produced a frame")
		}
	}
	if !slices.Equal(before, g.Snapshot()) {
		t.Fatal("grid changed after Stop")
	}
	if s.CurrentRate() != rate {
		t.Fatal("Stop should freeze the measured rate")
	}
	s.Stop()
	if s.Running() {
		t.Fatal("Stop while stopped must stay stopped")
	}
}

func TestStartResetsCounters(t *testing.T) {
	s := New(&countingEngine{})
	s.Start()
	s.OnHostTick(t0)
	s.OnHostTick(t0.Add(500 * time.Millisecond))
	s.OnHostTick(t0.Add(time.Second))
	if s.CurrentRate() == 0 {
		t.Fatal("expected a completed window")
	}

	s.Start()
	if !s.Running() || s.CurrentRate() != 0 || s.Stats().Samples != 0 {
		t.Fatalf("Start while running should clear counters: rate=%v stats=%+v", s.CurrentRate(), s.Stats())
	}

	// The next window starts at the first tick after Start.
	later := t0.Add(time.Hour)
	f, _ := s.OnHostTick(later)
	if f.RateUpdated {
		t.Fatal("first tick after Start must not close a window")
	}
}

func TestCustomWindow(t *testing.T) {
	s := New(&countingEngine{}, WithWindow(250*time.Millisecond))
	s.Start()
	updates := 0
	for i := 0; i <= 20; i++ {
		f, _ := s.OnHostTick(t0.Add(time.Duration(i) * 50 * time.Millisecond))
		if f.RateUpdated {
			updates++
		}
	}
	if updates != 4 {
		t.Fatalf("got %d window updates over 1s with a 250ms window, want 4", updates)
	}
	if math.Abs(s.CurrentRate()-20) > 1e-9 {
		t.Fatalf("steady-state rate = %v, want 20", s.CurrentRate())
	}
}

func TestStatsHistory(t *testing.T) {
	s := New(&countingEngine{}, WithHistory(3))
	s.Start()
	if s.Stats() != (Stats{}) {
		t.Fatal("stats should be empty before any interval is measured")
	}
	at := t0
	for _, d := range []time.Duration{
		100 * time.Millisecond, // 10 fps, evicted
		50 * time.Millisecond,  // 20 fps
		25 * time.Millisecond,  // 40 fps
		20 * time.Millisecond,  // 50 fps
	} {
		s.OnHostTick(at)
		at = at.Add(d)
	}
	s.OnHostTick(at)

	st := s.Stats()
	if st.Samples != 3 {
		t.Fatalf("Samples = %d, want 3", st.Samples)
	}
	if st.Latest != 50 || st.Min != 20 || st.Max != 50 {
		t.Fatalf("unexpected stats %+v", st)
	}
	if math.Abs(st.Mean-110.0/3) > 1e-9 {
		t.Fatalf("Mean = %v, want %v", st.Mean, 110.0/3)
	}
	if text := st.String(); !strings.Contains(text, "latest = 50") || !strings.Contains(text, "max of last   3 = 50") {
		t.Fatalf("unexpected panel:\n%s", text)
	}
}
