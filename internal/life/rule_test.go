package life

import (
	"testing"

	"tilelife/internal/core"
)

func gridWith(t *testing.T, w, h int, alive ...[2]int) *core.Grid {
	t.Helper()
	g := core.NewGrid(w, h)
	for _, c := range alive {
		if err := g.Set(c[0], c[1], true); err != nil {
			t.Fatalf("seed (%d,%d): %v", c[0], c[1], err)
		}
	}
	return g
}

func expectAlive(t *testing.T, label string, g *core.Grid, alive ...[2]int) {
	t.Helper()
	want := map[[2]int]bool{}
	for _, c := range alive {
		want[c] = true
	}
	size := g.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			got, _ := g.Get(x, y)
			if got != want[[2]int{x, y}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", label, x, y, got, want[[2]int{x, y}])
			}
		}
	}
}

func TestNextRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if Next(true, n) != wantAlive {
			t.Fatalf("live cell with %d neighbors: got %v", n, Next(true, n))
		}
		if Next(false, n) != (n == 3) {
			t.Fatalf("dead cell with %d neighbors: got %v", n, Next(false, n))
		}
	}
}

func TestLoneCellDies(t *testing.T) {
	g := gridWith(t, 5, 5, [2]int{2, 2})
	next := Step(g.Snapshot())
	if next.Population() != 0 {
		t.Fatalf("population=%d, expected 0", next.Population())
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := gridWith(t, 5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	original := g.Snapshot()

	g = Step(g.Snapshot())
	expectAlive(t, "after first step", g, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	g = Step(g.Snapshot())
	if !g.Snapshot().Equal(original) {
		t.Fatal("blinker did not return to its horizontal phase after two steps")
	}
}

func TestBlockIsStill(t *testing.T) {
	g := gridWith(t, 6, 6, [2]int{2, 2}, [2]int{3, 2}, [2]int{2, 3}, [2]int{3, 3})
	original := g.Snapshot()
	for i := 0; i < 10; i++ {
		g = Step(g.Snapshot())
		if !g.Snapshot().Equal(original) {
			t.Fatalf("block changed at step %d", i+1)
		}
	}
}

func TestStepDeterministic(t *testing.T) {
	g := core.NewGrid(32, 24)
	core.FillBernoulli(core.NewRNG(5), g.Cells(), 0.4)
	snap := g.Snapshot()
	a := Step(snap)
	b := Step(snap)
	if !a.Snapshot().Equal(b.Snapshot()) {
		t.Fatal("identical inputs produced different generations")
	}
	if !snap.Equal(g.Snapshot()) {
		t.Fatal("step modified its input")
	}
}

func TestCornerDoesNotWrap(t *testing.T) {
	// Live cells on the opposite edges would be neighbors of (0,0) on a torus.
	g := gridWith(t, 6, 6, [2]int{0, 0}, [2]int{5, 0}, [2]int{0, 5}, [2]int{5, 5})
	if n := Neighbors(g.Snapshot(), 0, 0); n != 0 {
		t.Fatalf("corner neighbors=%d, expected 0", n)
	}
	next := Step(g.Snapshot())
	if alive, _ := next.Get(0, 0); alive {
		t.Fatal("isolated corner cell survived")
	}
	if next.Population() != 0 {
		t.Fatalf("population=%d, expected 0", next.Population())
	}
}

func TestEdgeBirth(t *testing.T) {
	// Three live cells along the top edge give birth below the middle one only.
	g := gridWith(t, 3, 3, [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0})
	next := Step(g.Snapshot())
	expectAlive(t, "edge blinker", next, [2]int{1, 0}, [2]int{1, 1})
}

func TestStepEmptyGrid(t *testing.T) {
	for _, size := range []core.Size{{W: 0, H: 0}, {W: 0, H: 4}, {W: 4, H: 0}} {
		next := Step(core.NewGrid(size.W, size.H).Snapshot())
		if next.Size() != size {
			t.Fatalf("size=%+v, expected %+v", next.Size(), size)
		}
		if len(next.Cells()) != 0 {
			t.Fatalf("empty %+v grid produced cells", size)
		}
	}
}
