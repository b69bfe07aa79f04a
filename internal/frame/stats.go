package frame

import (
	"fmt"
	"math"
)

const defaultHistory = 100

// Stats summarises the instantaneous rates of recent frames.
type Stats struct {
	Latest  float64
	Mean    float64
	Min     float64
	Max     float64
	Samples int
}

// String renders the stats as a small text panel.
func (s Stats) String() string {
	return fmt.Sprintf("Frames per second:\n         latest = %.0f\navg of last %3d = %.0f\nmin of last %3d = %.0f\nmax of last %3d = %.0f\n",
		s.Latest, s.Samples, s.Mean, s.Samples, s.Min, s.Samples, s.Max)
}

// history is a fixed-size ring of rate samples, newest last.
type history struct {
	buf  []float64
	next int
	full bool
}

func newHistory(n int) *history { return &history{buf: make([]float64, n)} }

func (h *history) reset() {
	h.next = 0
	h.full = false
}

func (h *history) push(v float64) {
	h.buf[h.next] = v
	h.next++
	if h.next == len(h.buf) {
		h.next = 0
		h.full = true
	}
}

func (h *history) len() int {
	if h.full {
		return len(h.buf)
	}
	return h.next
}

func (h *history) summary() Stats {
	n := h.len()
	if n == 0 {
		return Stats{}
	}
	latest := h.next - 1
	if latest < 0 {
		latest = len(h.buf) - 1
	}
	s := Stats{Latest: h.buf[latest], Min: math.MaxFloat64, Max: -math.MaxFloat64, Samples: n}
	sum := 0.0
	for _, v := range h.buf[:n] {
		sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean = sum / float64(n)
	return s
}
