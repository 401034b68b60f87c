package life

import (
	"log"
	"time"

	"github.com/pkg/errors"

	"tilelife/internal/core"
)

// State is everything that changes while the simulation runs. It is passed
// explicitly through Engine.Update.
type State struct {
	Grid       *core.Grid
	Mode       core.PlayState
	Clock      core.Clock
	Generation int
}

// Report summarises what a call to Update did.
type Report struct {
	Steps   int
	Edits   int
	Dropped int
}

// Engine applies events to a State. It owns the fixed configuration and the
// random source used for randomize requests.
type Engine struct {
	cfg    Config
	mapper core.Mapper
	rng    *core.RNG
	logger *log.Logger
}

// NewEngine builds an Engine for cfg. A nil logger falls back to log.Default.
func NewEngine(cfg Config, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		cfg:    cfg,
		mapper: core.NewMapper(cfg.TileSize),
		rng:    core.NewRNG(cfg.Seed),
		logger: logger,
	}
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Mapper returns the position to cell mapper for the configured tile size.
func (e *Engine) Mapper() core.Mapper { return e.mapper }

// NewState returns the initial state: an all-dead grid, paused.
func (e *Engine) NewState() State {
	return State{
		Grid:  core.NewGrid(e.cfg.Width, e.cfg.Height),
		Mode:  core.Paused,
		Clock: core.NewClock(e.cfg.TickInterval),
	}
}

// Update applies events in order and returns the resulting state. Edits are
// applied to the grid in place; ticks replace it with a fresh generation.
func (e *Engine) Update(s State, events ...Event) (State, Report) {
	var r Report
	for _, ev := range events {
		switch ev := ev.(type) {
		case ToggleGameState:
			s = e.SwitchGameState(s)
		case ToggleCellAt:
			if ev.CursorMissing {
				e.logger.Printf("cursor is not in the game window; toggle dropped")
				r.Dropped++
				continue
			}
			applied, err := e.ToggleCell(s, ev.Position)
			if err != nil {
				e.logger.Printf("toggle dropped: %v", err)
				r.Dropped++
				continue
			}
			if applied {
				r.Edits++
			}
		case RandomizeRequest:
			if e.Randomize(s) {
				r.Edits++
			}
		case ClearRequest:
			if e.Clear(s) {
				r.Edits++
			}
		case StepRequest:
			var stepped bool
			if s, stepped = e.StepOnce(s); stepped {
				r.Steps++
			}
		case FrameAdvance:
			var ticked bool
			if s, ticked = e.Advance(s, ev.DT); ticked {
				r.Steps++
			}
		}
	}
	return s, r
}

// Frame is a convenience for hosts that deliver input and then frame time.
func (e *Engine) Frame(s State, dt time.Duration, events ...Event) (State, Report) {
	all := make([]Event, 0, len(events)+1)
	all = append(all, events...)
	return e.Update(s, append(all, FrameAdvance{DT: dt})...)
}

// SwitchGameState flips between playing and paused.
func (e *Engine) SwitchGameState(s State) State {
	s.Mode = s.Mode.Toggle()
	e.logger.Printf("state: %s", s.Mode)
	return s
}

// ToggleCell flips the cell under pos while paused. It reports whether a cell
// changed; while playing it does nothing. Positions outside the grid return
// core.ErrOutOfBounds.
func (e *Engine) ToggleCell(s State, pos core.Position) (bool, error) {
	if s.Mode != core.Paused {
		return false, nil
	}
	x, y := e.mapper.CellFromPosition(pos)
	alive, err := s.Grid.Toggle(x, y)
	if err != nil {
		return false, errors.Wrapf(err, "position (%.1f,%.1f)", pos.X, pos.Y)
	}
	e.logger.Printf("cell (%d,%d) alive=%t", x, y, alive)
	return true, nil
}

// Randomize overwrites every cell with an independent Bernoulli trial while
// paused. It reports whether the grid was rewritten.
func (e *Engine) Randomize(s State) bool {
	if s.Mode != core.Paused {
		return false
	}
	core.FillBernoulli(e.rng, s.Grid.Cells(), e.cfg.RandomizeProbability)
	e.logger.Printf("randomized: population=%d", s.Grid.Population())
	return true
}

// Clear kills every cell while paused.
func (e *Engine) Clear(s State) bool {
	if s.Mode != core.Paused {
		return false
	}
	s.Grid.Clear()
	return true
}

// StepOnce advances a single generation while paused.
func (e *Engine) StepOnce(s State) (State, bool) {
	if s.Mode != core.Paused {
		return s, false
	}
	return e.step(s), true
}

// Advance feeds dt to the clock. The clock runs in both modes; a tick that
// fires while paused is discarded rather than queued.
func (e *Engine) Advance(s State, dt time.Duration) (State, bool) {
	if !s.Clock.Advance(dt) || s.Mode != core.Playing {
		return s, false
	}
	return e.step(s), true
}

func (e *Engine) step(s State) State {
	s.Grid = Step(s.Grid.Snapshot())
	s.Generation++
	return s
}
