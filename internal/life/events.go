package life

import (
	"time"

	"tilelife/internal/core"
)

// Event is a discrete request delivered by the host loop.
type Event interface {
	event()
}

// ToggleGameState flips between playing and paused.
type ToggleGameState struct{}

// ToggleCellAt flips the cell under a pointer position. CursorMissing is set
// when the pointer was outside the window and no position is available.
type ToggleCellAt struct {
	Position      core.Position
	CursorMissing bool
}

// RandomizeRequest refills the grid with random cells.
type RandomizeRequest struct{}

// StepRequest advances exactly one generation while paused.
type StepRequest struct{}

// ClearRequest kills every cell while paused.
type ClearRequest struct{}

// FrameAdvance feeds elapsed frame time to the simulation clock.
type FrameAdvance struct {
	DT time.Duration
}

func (ToggleGameState) event()  {}
func (ToggleCellAt) event()     {}
func (RandomizeRequest) event() {}
func (StepRequest) event()      {}
func (ClearRequest) event()     {}
func (FrameAdvance) event()     {}
