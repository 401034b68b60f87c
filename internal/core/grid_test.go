package core

import (
	"testing"

	"github.com/pkg/errors"
)

func TestGridStartsDead(t *testing.T) {
	g := NewGrid(4, 3)
	if got := len(g.Cells()); got != 12 {
		t.Fatalf("cells=%d, expected 12", got)
	}
	if g.Population() != 0 {
		t.Fatalf("new grid population=%d, expected 0", g.Population())
	}
}

func TestGridRowMajorIndex(t *testing.T) {
	g := NewGrid(5, 4)
	if err := g.Set(3, 2, true); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !g.Cells()[2*5+3] {
		t.Fatal("cell (3,2) not stored at y*W+x")
	}
	if g.Index(3, 2) != 13 {
		t.Fatalf("index=%d, expected 13", g.Index(3, 2))
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3)
	coords := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {3, 3}}
	for _, c := range coords {
		if _, err := g.Get(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("get %v err=%v, expected ErrOutOfBounds", c, err)
		}
		if err := g.Set(c[0], c[1], true); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("set %v err=%v, expected ErrOutOfBounds", c, err)
		}
		if _, err := g.Toggle(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("toggle %v err=%v, expected ErrOutOfBounds", c, err)
		}
	}
	if g.Population() != 0 {
		t.Fatal("rejected writes must not touch the grid")
	}
}

func TestGridNegativeDimensions(t *testing.T) {
	g := NewGrid(-2, 5)
	if g.Size() != (Size{W: 0, H: 5}) {
		t.Fatalf("size=%+v, expected 0x5", g.Size())
	}
	if len(g.Cells()) != 0 {
		t.Fatal("zero-width grid must have no cells")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	g := NewGrid(3, 3)
	_ = g.Set(1, 1, true)
	snap := g.Snapshot()

	_ = g.Set(1, 1, false)
	_ = g.Set(0, 0, true)

	if alive, err := snap.Get(1, 1); err != nil || !alive {
		t.Fatalf("snapshot (1,1)=%v err=%v, expected alive", alive, err)
	}
	if snap.Alive(0, 0) {
		t.Fatal("snapshot observed a write made after it was taken")
	}
	if snap.Alive(-1, 0) || snap.Alive(3, 3) {
		t.Fatal("out-of-range snapshot reads must be dead")
	}
	if snap.Population() != 1 {
		t.Fatalf("snapshot population=%d, expected 1", snap.Population())
	}
}

func TestSnapshotEqual(t *testing.T) {
	a := NewGrid(2, 2)
	b := NewGrid(2, 2)
	_ = a.Set(0, 1, true)
	_ = b.Set(0, 1, true)
	if !a.Snapshot().Equal(b.Snapshot()) {
		t.Fatal("identical grids reported unequal")
	}
	_ = b.Set(1, 1, true)
	if a.Snapshot().Equal(b.Snapshot()) {
		t.Fatal("different grids reported equal")
	}
	if NewGrid(2, 3).Snapshot().Equal(NewGrid(3, 2).Snapshot()) {
		t.Fatal("different dimensions reported equal")
	}
}

func TestGridToggleAndClear(t *testing.T) {
	g := NewGrid(2, 2)
	if alive, _ := g.Toggle(1, 0); !alive {
		t.Fatal("first toggle should revive the cell")
	}
	if alive, _ := g.Toggle(1, 0); alive {
		t.Fatal("second toggle should kill the cell")
	}
	_ = g.Set(0, 0, true)
	_ = g.Set(1, 1, true)
	g.Clear()
	if g.Population() != 0 {
		t.Fatal("clear left live cells")
	}
}
