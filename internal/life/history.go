package life

import (
	"hash/fnv"

	"tilelife/internal/core"
)

// History remembers fingerprints of recent generations to detect still-lifes
// and short oscillators.
type History struct {
	depth  int
	hashes []uint64
}

// NewHistory keeps the last depth generations. Depth below one is raised to one.
func NewHistory(depth int) *History {
	if depth < 1 {
		depth = 1
	}
	return &History{depth: depth}
}

// Observe records a generation and returns the period it repeats with, or
// zero when it matches none of the remembered generations. A still-life has
// period one.
func (h *History) Observe(s core.Snapshot) int {
	sum := fingerprint(s)
	period := 0
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == sum {
			period = len(h.hashes) - i
			break
		}
	}
	h.hashes = append(h.hashes, sum)
	if len(h.hashes) > h.depth {
		h.hashes = h.hashes[1:]
	}
	return period
}

func fingerprint(s core.Snapshot) uint64 {
	f := fnv.New64a()
	size := s.Size()
	buf := make([]byte, 0, size.Cells())
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if s.Alive(x, y) {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
		}
	}
	_, _ = f.Write(buf)
	return f.Sum64()
}
