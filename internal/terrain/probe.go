package terrain

import "math"

// FloorSegment is one tile's walkable surface in screen space, together
// with the flags an actor needs to slide off open edges. Coordinates are
// screen cells; Y grows downward.
type FloorSegment struct {
	X0, Y0 float64
	X1, Y1 float64

	// OpenLeft/OpenRight report whether the neighboring tile is empty.
	OpenLeft  bool
	OpenRight bool

	// Speed is the global scroll speed at probe time, in cells per tick.
	Speed float64
}

// FloorCollider is the actor side of the collision contract. The probe
// reports geometry; the collider owns the physical response (snapping,
// sliding, falling through gaps).
type FloorCollider interface {
	X() float64
	ResolveFloor(seg FloorSegment)
}

// Probe scans the tiles around an actor's column and reports their floor
// segments. It only reads the strip.
type Probe struct {
	strip *Strip
	tileW int
	tileH int
	shift int
}

// NewProbe creates a probe over a strip. tileW and tileH are the tile
// cell size, shift the layer's total horizontal render offset.
func NewProbe(strip *Strip, tileW, tileH, shift int) *Probe {
	return &Probe{strip: strip, tileW: tileW, tileH: tileH, shift: shift}
}

// Scan reports the floor segments of every non-empty tile within two
// tiles of the actor's column. pointer is the slot of the oldest
// (leftmost) tile and scroll the pixel offset within it, matching the
// renderer's coordinate mapping.
func (p *Probe) Scan(pointer int, scroll, speed float64, actor FloorCollider) {
	tw := float64(p.tileW)
	origin := float64(ScreenShiftX + p.shift)
	col := int(math.Floor((actor.X() - origin + scroll) / tw))

	for di := -2; di <= 2; di++ {
		idx := col + di
		tile := p.strip.At(pointer + idx)
		if tile.Type == TypeEmpty {
			continue
		}

		seg := FloorSegment{
			OpenLeft:  p.strip.At(pointer+idx-1).Type == TypeEmpty,
			OpenRight: p.strip.At(pointer+idx+1).Type == TypeEmpty,
			Speed:     speed,
		}
		seg.X0 = float64(idx)*tw + origin - scroll
		seg.X1 = seg.X0 + tw

		y := float64(tile.Height * p.tileH)
		th := float64(p.tileH)
		switch tile.Slope {
		case SlopeAscending:
			seg.Y0, seg.Y1 = y+th, y
		case SlopeDescending:
			seg.Y0, seg.Y1 = y-th, y
		default:
			seg.Y0, seg.Y1 = y, y
		}

		actor.ResolveFloor(seg)
	}
}
