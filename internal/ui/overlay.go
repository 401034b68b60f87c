//go:build ebiten

package ui

import (
	"image/color"

	"tilelife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional grid lines and the cell under the cursor on top of
// the simulation. It only reads simulation state.
type Overlay struct {
	size     core.Size
	mapper   core.Mapper
	showGrid bool

	hoverX, hoverY int
	hovering       bool

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for a grid of the given size.
func NewOverlay(size core.Size, mapper core.Mapper) *Overlay {
	o := &Overlay{size: size, mapper: mapper}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay key and tracks the hovered cell.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	mx, my := ebiten.CursorPosition()
	o.hoverX, o.hoverY, o.hovering = hoveredCell(o.mapper, o.size, core.Position{X: float64(mx), Y: float64(my)})
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.size.W <= 0 || o.size.H <= 0 {
		return
	}
	tile := o.mapper.TileSize()
	width := float64(o.size.W) * tile
	height := float64(o.size.H) * tile

	if o.showGrid {
		lineColor := color.RGBA{R: 60, G: 60, B: 70, A: 255}
		for x := 0; x <= o.size.W; x++ {
			o.fillRect(screen, float64(x)*tile, 0, 1, height, lineColor)
		}
		for y := 0; y <= o.size.H; y++ {
			o.fillRect(screen, 0, float64(y)*tile, width, 1, lineColor)
		}
	}

	if o.hovering {
		origin := o.mapper.Origin(o.hoverX, o.hoverY)
		hover := color.RGBA{R: 90, G: 130, B: 170, A: 255}
		o.fillRect(screen, origin.X, origin.Y, tile, 1, hover)
		o.fillRect(screen, origin.X, origin.Y+tile-1, tile, 1, hover)
		o.fillRect(screen, origin.X, origin.Y, 1, tile, hover)
		o.fillRect(screen, origin.X+tile-1, origin.Y, 1, tile, hover)
	}
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
