package life

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidPattern is returned when plaintext pattern input cannot be parsed.
var ErrInvalidPattern = errors.New("life: invalid pattern")

// ParsePlaintext reads the Life plaintext format. Lines starting with '!' are
// comments, 'O' or '*' marks a live cell and '.' a dead one. The first
// non-comment line is row 0.
func ParsePlaintext(s string) (Pattern, error) {
	var p Pattern
	row := 0
	for n, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		for col, ch := range line {
			switch ch {
			case 'O', '*':
				p = append(p, Cell{Row: row, Col: col})
			case '.':
			default:
				return nil, fmt.Errorf("%w: line %d: unexpected %q", ErrInvalidPattern, n+1, ch)
			}
		}
		row++
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: no live cells", ErrInvalidPattern)
	}
	return p, nil
}

// Offset returns a copy of p translated by (row, col).
func (p Pattern) Offset(row, col int) Pattern {
	out := make(Pattern, len(p))
	for i, c := range p {
		out[i] = Cell{Row: c.Row + row, Col: c.Col + col}
	}
	return out
}

// Bounds returns the number of rows and columns spanned by p, measured from
// the origin. An empty pattern spans nothing.
func (p Pattern) Bounds() (rows, cols int) {
	for _, c := range p {
		if c.Row+1 > rows {
			rows = c.Row + 1
		}
		if c.Col+1 > cols {
			cols = c.Col + 1
		}
	}
	return rows, cols
}

// Plaintext renders p in the format accepted by ParsePlaintext. Cells with
// negative coordinates are skipped.
func (p Pattern) Plaintext() string {
	rows, cols := p.Bounds()
	buf := make([][]byte, rows)
	for i := range buf {
		buf[i] = []byte(strings.Repeat(".", cols))
	}
	for _, c := range p {
		if c.Row < 0 || c.Col < 0 {
			continue
		}
		buf[c.Row][c.Col] = 'O'
	}
	var b strings.Builder
	for _, line := range buf {
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.String()
}

var named = map[string]string{
	"blinker":     "OOO",
	"block":       "OO\nOO",
	"beehive":     ".OO.\nO..O\n.OO.",
	"toad":        ".OOO\nOOO.",
	"glider":      ".O.\n..O\nOOO",
	"lwss":        ".O..O\nO....\nO...O\nOOOO.",
	"r-pentomino": ".OO\nOO.\n.O.",
}

// Named returns a built-in pattern anchored at the origin.
func Named(name string) (Pattern, bool) {
	src, ok := named[name]
	if !ok {
		return nil, false
	}
	p, err := ParsePlaintext(src)
	if err != nil {
		panic(fmt.Sprintf("life: built-in pattern %q: %v", name, err))
	}
	return p, true
}

// Names lists the built-in patterns in sorted order.
func Names() []string {
	names := make([]string, 0, len(named))
	for k := range named {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
