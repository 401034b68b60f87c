//go:build ebiten

package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"tilelife/internal/app"
	"tilelife/internal/life"
)

func main() {
	cfg := life.DefaultConfig()
	configPath := flag.String("config", "", "optional JSON config file; flags override it")
	tps := flag.Int("tps", 60, "frames per second")
	hudWidth := flag.Int("hud", 200, "HUD panel width in pixels (0 hides it)")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		loaded, err := life.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
		// Flags are bound to cfg's fields; parsing again lays them over the file.
		if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
			log.Fatal(err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	engine := life.NewEngine(cfg, log.Default())
	game := app.New(engine, *hudWidth)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("tilelife")
	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
