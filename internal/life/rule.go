// Package life implements Conway's Game of Life on a bounded grid together
// with the play/pause and editing controller that drives it.
package life

import "tilelife/internal/core"

// Next applies Conway's rule to a single cell.
func Next(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Neighbors counts live cells among the eight surrounding (x, y). Positions
// beyond the grid edge count as dead; the grid does not wrap.
func Neighbors(prev core.Snapshot, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if prev.Alive(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Step computes the generation that follows prev. Every cell is derived from
// prev alone, so the result never depends on partially-updated neighbors.
func Step(prev core.Snapshot) *core.Grid {
	size := prev.Size()
	next := core.NewGrid(size.W, size.H)
	cells := next.Cells()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			cells[y*size.W+x] = Next(prev.Alive(x, y), Neighbors(prev, x, y))
		}
	}
	return next
}
