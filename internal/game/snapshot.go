package game

import "github.com/anterakt/palmrun/internal/terrain"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        int
	Score       int
	Distance    int
	GapsCleared int
	Pointer     int
	Scroll      float64
	Speed       float64
	PlayerY     float64
	PlayerVel   float64
	Grounded    bool
	FgHeight    int
	FgType      terrain.TileType
	BgHeight    int
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	}

	return Snapshot{
		Tick:        g.tickCount,
		Score:       g.score,
		Distance:    g.distance,
		GapsCleared: g.gapsCleared,
		Pointer:     g.pointer,
		Scroll:      g.scroll,
		Speed:       g.speed,
		PlayerY:     g.player.Y(),
		PlayerVel:   g.player.vel,
		Grounded:    g.player.Grounded(),
		FgHeight:    g.fg.Height(),
		FgType:      g.fg.Type(),
		BgHeight:    g.bg.Height(),
		State:       state,
	}
}
