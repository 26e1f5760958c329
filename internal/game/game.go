// Package game implements the endless island runner: two procedurally
// generated terrain layers scroll under a fixed-column player who jumps
// gaps and crosses bridges for as long as possible.
package game

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/anterakt/palmrun/internal/config"
	"github.com/anterakt/palmrun/internal/core"
	"github.com/anterakt/palmrun/internal/terrain"
)

const (
	tileW = 2 // tile width in screen cells
	tileH = 1 // screen cells per height row

	gapBonus = 25 // score bonus per gap scrolled past

	minScreenW = 40
	minScreenH = 16
)

// Game implements the runner game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.Config
	difficulty *config.DifficultyManager

	rng *rand.Rand

	fg     *terrain.Layer
	bg     *terrain.Layer
	fgDraw *terrain.Renderer
	bgDraw *terrain.Renderer
	probe  *terrain.Probe

	pointer int     // slot of the oldest (leftmost) tile
	scroll  float64 // cell offset within the leftmost tile
	speed   float64 // current scroll speed, cells per tick

	player *Player

	score       int
	distance    int // tiles travelled
	gapsCleared int
	lastGaps    int

	startedAt time.Time
	tickCount int
	gameOver  bool
	paused    bool
	tooSmall  bool
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a new runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "palmrun"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Palm Run"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	// The strip covers the screen plus one spare tile on each side.
	width := runtime.ScreenW/tileW + 2

	fp := cfg.Terrain.Foreground.Params()
	fp.Height = terrain.Range{
		Min: runtime.ScreenH + cfg.Terrain.Foreground.HeightMin,
		Max: runtime.ScreenH + cfg.Terrain.Foreground.HeightMax,
	}
	startH := (fp.Height.Min + fp.Height.Max) / 2

	g.fg = terrain.NewLayer(width, startH, fp, g.rng)
	g.bg = terrain.NewLayer(width, startH-5, cfg.Terrain.Background.Params(), g.rng)
	g.bg.SetReference(g.fg)

	g.fgDraw = terrain.NewRenderer(g.fg.Strip(), foregroundSprites(), cfg.Terrain.Foreground.Shift)
	g.bgDraw = terrain.NewRenderer(g.bg.Strip(), backgroundSprites(), cfg.Terrain.Background.Shift)
	g.probe = terrain.NewProbe(g.fg.Strip(), tileW, tileH, cfg.Terrain.Foreground.Shift)

	g.player = NewPlayer(cfg.Player, cfg.Physics)
	g.player.y = float64(startH)
	g.player.grounded = true

	g.pointer = 0
	g.scroll = 0
	g.speed = cfg.Physics.BaseSpeed
	g.score = 0
	g.distance = 0
	g.gapsCleared = 0
	g.lastGaps = 0
	g.startedAt = time.Now()
	g.tickCount = 0
	g.gameOver = false
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.speed = g.difficulty.Speed(g.cfg.Physics.BaseSpeed, g.score, g.tickCount)

	// Advance the generators once per tile-boundary crossing; the
	// foreground goes first so the background reads fresh state.
	g.scroll += g.speed
	for g.scroll >= tileW {
		g.scroll -= tileW
		g.fg.Advance(g.pointer)
		g.bg.Advance(g.pointer)
		g.pointer = (g.pointer + 1) % g.fg.Width()
		g.distance++
	}

	g.player.BeginStep(in.Has(core.ActionJump), in.Has(core.ActionDuck))
	g.probe.Scan(g.pointer, g.scroll, g.speed, g.player)

	if gaps := g.fg.GapsClosed(); gaps > g.lastGaps {
		g.gapsCleared += gaps - g.lastGaps
		g.lastGaps = gaps
	}
	g.score = g.distance + g.gapsCleared*gapBonus

	// Falling below the screen means a missed gap.
	if g.player.Y() > float64(g.runtime.ScreenH)+2 {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.FillBg(core.ColorSky)

	if g.tooSmall {
		g.drawCenteredMessage(dst, "WINDOW TOO SMALL",
			fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
		return
	}

	scroll := int(g.scroll)
	g.bgDraw.Draw(dst, g.pointer, scroll, dst.Height())
	g.fgDraw.Draw(dst, g.pointer, scroll, dst.Height())
	g.drawPlayer(dst)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorHUD)
	if g.difficulty.IsEnabled() {
		speedText := fmt.Sprintf(" Spd: %.2f ", g.speed)
		dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText, core.ColorHUD)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawPlayer renders the runner at its fixed column.
func (g *Game) drawPlayer(dst *core.Screen) {
	sheet := playerSheet(g.player.Grounded(), g.tickCount)
	top := int(math.Round(g.player.Y()))*tileH - sheet.Height()
	dst.DrawRegion(sheet, int(g.player.x), top, 0, 0, sheet.Width(), sheet.Height())
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorHUD)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorHUD)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorDim)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Distance: g.distance,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// GapsCleared returns how many gaps have scrolled past during the run.
func (g *Game) GapsCleared() int {
	return g.gapsCleared
}

// Duration returns the wall-clock length of the current run.
func (g *Game) Duration() time.Duration {
	return time.Since(g.startedAt)
}
