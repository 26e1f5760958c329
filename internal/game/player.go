package game

import (
	"github.com/anterakt/palmrun/internal/config"
	"github.com/anterakt/palmrun/internal/terrain"
)

// Player is the runner. It sits at a fixed screen column while the
// terrain scrolls underneath; only its vertical position is simulated.
// It implements terrain.FloorCollider and owns the physical response to
// the floor segments the probe reports.
type Player struct {
	phys config.PhysicsConfig

	x float64 // left column, fixed for the whole run
	w int
	h int

	y        float64 // feet row
	prevY    float64
	vel      float64
	grounded bool
}

// NewPlayer creates a player from its configuration.
func NewPlayer(pc config.PlayerConfig, phys config.PhysicsConfig) *Player {
	return &Player{
		phys: phys,
		x:    float64(pc.X),
		w:    pc.Width,
		h:    pc.Height,
	}
}

// X returns the horizontal center of the feet, the anchor the collision
// probe scans around.
func (p *Player) X() float64 {
	return p.x + float64(p.w)/2
}

// Y returns the feet row.
func (p *Player) Y() float64 {
	return p.y
}

// Grounded reports whether the player stood on a floor after the last
// resolution pass.
func (p *Player) Grounded() bool {
	return p.grounded
}

// BeginStep applies input and gravity. The player is assumed airborne
// until a floor segment resolves it back onto the ground.
func (p *Player) BeginStep(jump, duck bool) {
	if jump && p.grounded {
		p.vel = p.phys.JumpImpulse
		p.grounded = false
	}
	if duck && !p.grounded && p.vel < p.phys.MaxFallSpeed {
		p.vel = p.phys.MaxFallSpeed
	}

	p.vel += p.phys.Gravity
	if p.vel > p.phys.MaxFallSpeed {
		p.vel = p.phys.MaxFallSpeed
	}

	p.prevY = p.y
	p.y += p.vel
	p.grounded = false
}

// snapRange is how far above a floor the previous position may be for a
// landing to snap; it covers one row of slope change between ticks.
const snapRange = 1.2

// ResolveFloor lands the player on a reported segment. Segments that do
// not span the feet are ignored; an open right edge lets the player
// start falling slightly before the segment ends.
func (p *Player) ResolveFloor(seg terrain.FloorSegment) {
	cx := p.X()
	if cx < seg.X0 || cx >= seg.X1 {
		return
	}
	if seg.OpenRight && cx >= seg.X1-0.5 {
		return
	}
	if p.vel < 0 {
		return // rising through, jumps ignore floors
	}

	t := (cx - seg.X0) / (seg.X1 - seg.X0)
	floorY := seg.Y0 + t*(seg.Y1-seg.Y0)

	if p.y >= floorY-0.001 && p.prevY <= floorY+snapRange {
		p.y = floorY
		p.vel = 0
		p.grounded = true
	}
}
