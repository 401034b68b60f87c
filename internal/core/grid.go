package core

import "github.com/pkg/errors"

// ErrOutOfBounds is returned when a coordinate falls outside the grid.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Grid stores a fixed W×H field of alive/dead cells in row-major order.
type Grid struct {
	w, h int
	data []bool
}

// NewGrid allocates an all-dead grid. Negative dimensions are treated as zero.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{w: w, h: h, data: make([]bool, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the backing slice for read-only consumers such as renderers.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

// Get returns the state of the cell at (x, y).
func (g *Grid) Get(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, errors.Wrapf(ErrOutOfBounds, "get (%d,%d) on %dx%d grid", x, y, g.w, g.h)
	}
	return g.data[g.Index(x, y)], nil
}

// Set updates the cell at (x, y).
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.InBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "set (%d,%d) on %dx%d grid", x, y, g.w, g.h)
	}
	g.data[g.Index(x, y)] = alive
	return nil
}

// Toggle flips the cell at (x, y) and returns its new state.
func (g *Grid) Toggle(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, errors.Wrapf(ErrOutOfBounds, "toggle (%d,%d) on %dx%d grid", x, y, g.w, g.h)
	}
	i := g.Index(x, y)
	g.data[i] = !g.data[i]
	return g.data[i], nil
}

// Population counts live cells.
func (g *Grid) Population() int { return countAlive(g.data) }

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// Snapshot returns an immutable copy of the current generation.
func (g *Grid) Snapshot() Snapshot {
	cells := make([]bool, len(g.data))
	copy(cells, g.data)
	return Snapshot{w: g.w, h: g.h, cells: cells}
}

// Snapshot is a read-only copy of a grid. It is the "previous generation"
// input of a step and is never written after construction.
type Snapshot struct {
	w, h  int
	cells []bool
}

// Size returns the snapshot dimensions.
func (s Snapshot) Size() Size { return Size{W: s.w, H: s.h} }

// Get returns the state of the cell at (x, y).
func (s Snapshot) Get(x, y int) (bool, error) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return false, errors.Wrapf(ErrOutOfBounds, "get (%d,%d) on %dx%d snapshot", x, y, s.w, s.h)
	}
	return s.cells[y*s.w+x], nil
}

// Alive reports whether (x, y) holds a live cell. Coordinates outside the
// snapshot read as dead.
func (s Snapshot) Alive(x, y int) bool {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return false
	}
	return s.cells[y*s.w+x]
}

// Population counts live cells.
func (s Snapshot) Population() int { return countAlive(s.cells) }

// Equal reports whether two snapshots have identical dimensions and cells.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.w != o.w || s.h != o.h {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

func countAlive(cells []bool) int {
	n := 0
	for _, c := range cells {
		if c {
			n++
		}
	}
	return n
}
