package terrain

import "github.com/anterakt/palmrun/internal/core"

// ScreenShiftX shifts the whole strip left by one tile so the oldest
// tile can scroll off smoothly while it is being replaced.
const ScreenShiftX = -2

// Canvas is the drawing surface the renderer blits onto. *core.Screen
// satisfies it.
type Canvas interface {
	DrawRegion(sheet *core.Sheet, destX, destY, srcX, srcY, w, h int)
}

// SpriteSet bundles the sprite sheets and metrics for one layer.
type SpriteSet struct {
	// Surface holds the tile cap variants as a 3x3 grid: rows by slope
	// (flat, ascending, descending), columns by edge (left, middle,
	// right).
	Surface *core.Sheet
	// Fill is repeated below the cap down to the screen bottom.
	Fill   *core.Sheet
	Bridge *core.Sheet
	Palm   *core.Sheet

	TileW int // tile width in cells
	TileH int // cells per height row

	BridgeYOff int // bridge sprite offset from the tile top
	PalmDX     int // decoration anchor offset from the tile's top-left
	PalmDY     int
}

// Renderer translates ring state into sprite blits for one layer.
type Renderer struct {
	strip   *Strip
	sprites SpriteSet
	shift   int // static per-layer horizontal offset, used for parallax
}

// NewRenderer creates a renderer over a strip.
func NewRenderer(strip *Strip, sprites SpriteSet, shift int) *Renderer {
	return &Renderer{strip: strip, sprites: sprites, shift: shift}
}

// Draw blits the visible window onto the canvas. pointer is the slot of
// the oldest (leftmost) tile, scroll the pixel offset within it.
// Decorations are drawn before their tile so the cap overdraws any
// overlap; empty tiles draw nothing.
func (r *Renderer) Draw(c Canvas, pointer, scroll, screenH int) {
	sp := r.sprites
	for i := 0; i < r.strip.Width(); i++ {
		slot := pointer + i
		tile := r.strip.At(slot)
		if tile.Type == TypeEmpty {
			continue
		}

		x := i*sp.TileW + ScreenShiftX - scroll + r.shift
		top := tile.Height * sp.TileH

		if tile.Decoration == DecorPalm {
			c.DrawRegion(sp.Palm, x+sp.PalmDX, top+sp.PalmDY,
				0, 0, sp.Palm.Width(), sp.Palm.Height())
		}

		if tile.Type == TypeBridge {
			c.DrawRegion(sp.Bridge, x, top+sp.BridgeYOff,
				0, 0, sp.TileW, sp.TileH)
			continue
		}

		srcX := r.edgeVariant(slot) * sp.TileW
		srcY := slopeVariant(tile.Slope) * sp.TileH
		c.DrawRegion(sp.Surface, x, top, srcX, srcY, sp.TileW, sp.TileH)
		for y := top + sp.TileH; y < screenH; y += sp.TileH {
			c.DrawRegion(sp.Fill, x, y, 0, 0, sp.TileW, sp.TileH)
		}
	}
}

// edgeVariant picks the cap column: 0 where the surface starts, 2 where
// it ends, 1 in the middle.
func (r *Renderer) edgeVariant(slot int) int {
	left := r.strip.At(slot-1).Type != TypeSurface
	right := r.strip.At(slot+1).Type != TypeSurface
	switch {
	case left:
		return 0
	case right:
		return 2
	default:
		return 1
	}
}

func slopeVariant(s Slope) int {
	switch s {
	case SlopeAscending:
		return 1
	case SlopeDescending:
		return 2
	default:
		return 0
	}
}
