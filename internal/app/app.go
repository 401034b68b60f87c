//go:build ebiten

package app

import (
	"log"

	"tilelife/internal/core"
	"tilelife/internal/life"
	"tilelife/internal/render"
	"tilelife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the life engine to the ebiten.Game interface.
type Game struct {
	engine *life.Engine
	state  life.State
	frames *core.FrameTimer

	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
}

// New constructs a Game for the provided engine.
func New(engine *life.Engine, hudWidth int) *Game {
	cfg := engine.Config()
	size := cfg.Size()
	return &Game{
		engine:  engine,
		state:   engine.NewState(),
		frames:  core.NewFrameTimer(),
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(size, engine.Mapper()),
		hud:     ui.NewHUD(cfg.Parameters(), hudWidth),
	}
}

// Update reads input, applies it to the simulation and advances the clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	w, h := g.gridPixels()
	mx, my := ebiten.CursorPosition()
	in := Input{
		ToggleState: inpututil.IsKeyJustReleased(ebiten.KeySpace),
		Click:       inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Randomize:   inpututil.IsKeyJustReleased(ebiten.KeyR),
		Step:        inpututil.IsKeyJustPressed(ebiten.KeyN),
		Clear:       inpututil.IsKeyJustPressed(ebiten.KeyC),
		CursorX:     mx,
		CursorY:     my,
		WindowW:     w + g.hud.Width(),
		WindowH:     h,
	}

	var report life.Report
	g.state, report = g.engine.Frame(g.state, g.frames.Delta(), in.Events()...)
	if report.Dropped > 0 {
		log.Printf("dropped %d request(s) this frame", report.Dropped)
	}

	g.overlay.Update()
	g.hud.Update(ui.Status{
		Mode:       g.state.Mode,
		Generation: g.state.Generation,
		Population: g.state.Grid.Population(),
		Cells:      g.state.Grid.Size().Cells(),
	})
	return nil
}

// Draw renders the current generation. It never writes simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	cfg := g.engine.Config()
	g.painter.Blit(screen, g.state.Grid.Cells(), cfg.AliveColor, cfg.DeadColor, cfg.TileSize)
	g.overlay.Draw(screen)
	w, h := g.gridPixels()
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.gridPixels()
	return w + g.hud.Width(), h
}

func (g *Game) gridPixels() (int, int) {
	cfg := g.engine.Config()
	return int(float64(cfg.Width) * cfg.TileSize), int(float64(cfg.Height) * cfg.TileSize)
}
