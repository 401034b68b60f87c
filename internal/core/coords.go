package core

import "math"

// Position is a continuous point in screen space, measured in pixels from the
// grid origin.
type Position struct {
	X, Y float64
}

// Mapper converts continuous positions into grid coordinates.
type Mapper struct {
	tileSize float64
}

// NewMapper returns a Mapper for square tiles of the given size. A
// non-positive size maps one unit to one cell.
func NewMapper(tileSize float64) Mapper {
	if tileSize <= 0 || math.IsNaN(tileSize) || math.IsInf(tileSize, 0) {
		tileSize = 1
	}
	return Mapper{tileSize: tileSize}
}

// TileSize returns the edge length of a cell.
func (m Mapper) TileSize() float64 { return m.tileSize }

// CellFromPosition returns the cell containing p. The result is not clamped;
// callers must bounds-check it before indexing a grid.
func (m Mapper) CellFromPosition(p Position) (int, int) {
	return int(math.Floor(p.X / m.tileSize)), int(math.Floor(p.Y / m.tileSize))
}

// Origin returns the top-left corner of cell (x, y).
func (m Mapper) Origin(x, y int) Position {
	return Position{X: float64(x) * m.tileSize, Y: float64(y) * m.tileSize}
}
