package ui

import (
	"slices"
	"testing"

	"tilelife/internal/core"
)

func TestStatusLines(t *testing.T) {
	lines := statusLines(Status{Mode: core.Playing, Generation: 12, Population: 25, Cells: 100})
	want := []string{"State: playing", "Gen: 12", "Living: 25 (25.0%)", "space: pause"}
	if !slices.Equal(lines, want) {
		t.Fatalf("lines=%q, expected %q", lines, want)
	}
	empty := statusLines(Status{})
	if empty[2] != "Living: 0 (0.0%)" || empty[3] != "space: play" {
		t.Fatalf("empty status lines=%q", empty)
	}
}

func TestParameterLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Grid",
		Params: []core.Parameter{{Key: "w", Label: "Width", Value: "100"}},
	}}}
	want := []string{"Grid", "  Width: 100"}
	if got := parameterLines(snap); !slices.Equal(got, want) {
		t.Fatalf("lines=%q, expected %q", got, want)
	}
}

func TestHoveredCell(t *testing.T) {
	m := core.NewMapper(10)
	size := core.Size{W: 4, H: 3}
	if x, y, ok := hoveredCell(m, size, core.Position{X: 39, Y: 29}); !ok || x != 3 || y != 2 {
		t.Fatalf("got (%d,%d,%v), expected (3,2,true)", x, y, ok)
	}
	for _, p := range []core.Position{{X: 40, Y: 0}, {X: 0, Y: 30}, {X: -1, Y: 5}} {
		if _, _, ok := hoveredCell(m, size, p); ok {
			t.Fatalf("position %+v should not hover a cell", p)
		}
	}
}
