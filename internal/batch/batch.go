// Package batch runs many headless simulations concurrently, each driven
// through the same event interface as the GUI.
package batch

import (
	"context"
	"io"
	"log"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"tilelife/internal/life"
)

// Options controls a batch.
type Options struct {
	Runs         int
	Generations  int
	Workers      int
	BaseSeed     int64
	HistoryDepth int
}

// DefaultOptions returns a small batch sized to the machine.
func DefaultOptions() Options {
	return Options{
		Runs:         16,
		Generations:  500,
		Workers:      runtime.NumCPU(),
		BaseSeed:     1,
		HistoryDepth: 8,
	}
}

// Result describes how a single randomized board evolved.
type Result struct {
	Seed        int64
	Generations int
	Population  int
	Period      int
	Extinct     bool
}

// Settled reports whether the run ended in a still-life, oscillator or
// extinction before the generation limit.
func (r Result) Settled() bool { return r.Extinct || r.Period > 0 }

// Run executes opts.Runs simulations of cfg with consecutive seeds. Results
// are returned in seed order. Cancellation is checked between generations.
func Run(ctx context.Context, cfg life.Config, opts Options) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if opts.Runs < 0 || opts.Generations < 0 {
		return nil, errors.Errorf("runs and generations must not be negative, got %d and %d", opts.Runs, opts.Generations)
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}

	results := make([]Result, opts.Runs)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Workers)
	for i := 0; i < opts.Runs; i++ {
		runCfg := cfg
		runCfg.Seed = opts.BaseSeed + int64(i)
		eg.Go(func() error {
			res, err := runOne(ctx, runCfg, opts)
			if err != nil {
				return errors.Wrapf(err, "run seed=%d", runCfg.Seed)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, cfg life.Config, opts Options) (Result, error) {
	engine := life.NewEngine(cfg, log.New(io.Discard, "", 0))
	state, _ := engine.Update(engine.NewState(), life.RandomizeRequest{}, life.ToggleGameState{})

	res := Result{Seed: cfg.Seed}
	history := life.NewHistory(opts.HistoryDepth)
	history.Observe(state.Grid.Snapshot())
	for state.Generation < opts.Generations {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		state, _ = engine.Frame(state, cfg.TickInterval)
		snap := state.Grid.Snapshot()
		if snap.Population() == 0 {
			res.Extinct = true
			break
		}
		if period := history.Observe(snap); period > 0 {
			res.Period = period
			break
		}
	}
	res.Generations = state.Generation
	res.Population = state.Grid.Population()
	return res, nil
}

// Summary aggregates a batch.
type Summary struct {
	Runs           int
	Settled        int
	Extinct        int
	MeanPopulation float64
}

// Summarize reduces results to a Summary.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results)}
	if len(results) == 0 {
		return s
	}
	total := 0
	for _, r := range results {
		total += r.Population
		if r.Settled() {
			s.Settled++
		}
		if r.Extinct {
			s.Extinct++
		}
	}
	s.MeanPopulation = float64(total) / float64(len(results))
	return s
}
