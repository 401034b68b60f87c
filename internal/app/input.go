package app

import (
	"tilelife/internal/core"
	"tilelife/internal/life"
)

// Input is the debounced input of one frame, already reduced to discrete
// presses by the windowing layer.
type Input struct {
	ToggleState bool
	Click       bool
	Randomize   bool
	Step        bool
	Clear       bool

	CursorX, CursorY int
	WindowW, WindowH int
}

func (in Input) cursorInWindow() bool {
	return in.CursorX >= 0 && in.CursorY >= 0 && in.CursorX < in.WindowW && in.CursorY < in.WindowH
}

// Events converts the frame input into core events. Edits are emitted before
// the play/pause switch so a click in the frame that starts playback still
// lands on the paused grid.
func (in Input) Events() []life.Event {
	var events []life.Event
	if in.Click {
		ev := life.ToggleCellAt{CursorMissing: !in.cursorInWindow()}
		if !ev.CursorMissing {
			ev.Position = core.Position{X: float64(in.CursorX), Y: float64(in.CursorY)}
		}
		events = append(events, ev)
	}
	if in.Clear {
		events = append(events, life.ClearRequest{})
	}
	if in.Randomize {
		events = append(events, life.RandomizeRequest{})
	}
	if in.Step {
		events = append(events, life.StepRequest{})
	}
	if in.ToggleState {
		events = append(events, life.ToggleGameState{})
	}
	return events
}
