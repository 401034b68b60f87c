package ui

import (
	"fmt"

	"tilelife/internal/core"
)

// Status is the per-frame view of the simulation shown on the HUD.
type Status struct {
	Mode       core.PlayState
	Generation int
	Population int
	Cells      int
}

func statusLines(s Status) []string {
	density := 0.0
	if s.Cells > 0 {
		density = float64(s.Population) / float64(s.Cells) * 100
	}
	hint := "space: play"
	if s.Mode == core.Playing {
		hint = "space: pause"
	}
	return []string{
		fmt.Sprintf("State: %s", s.Mode),
		fmt.Sprintf("Gen: %d", s.Generation),
		fmt.Sprintf("Living: %d (%.1f%%)", s.Population, density),
		hint,
	}
}

func parameterLines(snapshot core.ParameterSnapshot) []string {
	var lines []string
	for _, group := range snapshot.Groups {
		lines = append(lines, group.Name)
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}

// hoveredCell returns the in-bounds cell under pos, if any.
func hoveredCell(m core.Mapper, size core.Size, pos core.Position) (int, int, bool) {
	x, y := m.CellFromPosition(pos)
	if x < 0 || y < 0 || x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}
