package core

// Grid stores a 2D grid of boolean cells in row-major order.
type Grid struct {
	W, H int
	data []bool
}

// NewGrid allocates a grid with the given dimensions. Non-positive
// dimensions are clamped to 1; callers that need to reject them validate
// first.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]bool, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for (row, col). It does not wrap.
func (g *Grid) Index(row, col int) int { return row*g.W + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.H + g.H) % g.H
	col = (col%g.W + g.W) % g.W
	return row, col
}

// At returns the cell at (row, col) after wrapping.
func (g *Grid) At(row, col int) bool {
	row, col = g.Wrap(row, col)
	return g.data[g.Index(row, col)]
}

// Put stores v at (row, col) after wrapping.
func (g *Grid) Put(row, col int, v bool) {
	row, col = g.Wrap(row, col)
	g.data[g.Index(row, col)] = v
}

// Clear sets every cell to false.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// Count returns the number of true cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.data {
		if c {
			n++
		}
	}
	return n
}

// Clone returns a copy of the cell buffer that shares no memory with g.
func (g *Grid) Clone() []bool {
	return append([]bool(nil), g.data...)
}
