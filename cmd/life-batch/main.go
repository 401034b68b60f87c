package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tilelife/internal/batch"
	"tilelife/internal/life"
)

func main() {
	cfg := life.DefaultConfig()
	opts := batch.DefaultOptions()

	configPath := flag.String("config", "", "optional JSON config file; flags override it")
	flag.IntVar(&opts.Runs, "runs", opts.Runs, "number of randomized boards to simulate")
	flag.IntVar(&opts.Generations, "generations", opts.Generations, "generation limit per board")
	flag.IntVar(&opts.Workers, "workers", opts.Workers, "number of concurrent simulations")
	flag.Int64Var(&opts.BaseSeed, "base-seed", opts.BaseSeed, "seed of the first board; later boards count up")
	flag.IntVar(&opts.HistoryDepth, "history", opts.HistoryDepth, "generations remembered for cycle detection")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		loaded, err := life.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
		if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
			log.Fatal(err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Simulating %d boards of %dx%d (%d workers, %d generations)\n",
		opts.Runs, cfg.Width, cfg.Height, opts.Workers, opts.Generations)

	start := time.Now()
	results, err := batch.Run(ctx, cfg, opts)
	if err != nil {
		log.Fatal(err)
	}

	for _, r := range results {
		outcome := "running"
		switch {
		case r.Extinct:
			outcome = "extinct"
		case r.Period == 1:
			outcome = "still"
		case r.Period > 1:
			outcome = fmt.Sprintf("period %d", r.Period)
		}
		fmt.Printf("seed=%d gen=%d living=%d %s\n", r.Seed, r.Generations, r.Population, outcome)
	}

	s := batch.Summarize(results)
	fmt.Printf("\n%d/%d settled, %d extinct, mean population %.1f (elapsed %s)\n",
		s.Settled, s.Runs, s.Extinct, s.MeanPopulation, time.Since(start).Round(time.Millisecond))
}
