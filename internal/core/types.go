package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }

// PlayState gates whether the simulation ticks or accepts edits.
type PlayState uint8

const (
	// Paused accepts edits and ignores clock ticks. It is the initial state.
	Paused PlayState = iota
	// Playing advances one generation per clock tick.
	Playing
)

// Toggle returns the opposite state.
func (p PlayState) Toggle() PlayState {
	if p == Playing {
		return Paused
	}
	return Playing
}

func (p PlayState) String() string {
	switch p {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}
