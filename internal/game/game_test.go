package game

import (
	"strings"
	"testing"

	"github.com/anterakt/palmrun/internal/core"
	"github.com/anterakt/palmrun/internal/terrain"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := testRuntime(12345)

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		if i%90 == 30 {
			input.Set(core.ActionJump)
		}
		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1 != snap2 {
		t.Errorf("snapshots diverged:\n%+v\n%+v", snap1, snap2)
	}
	if snap1.Tick == 0 {
		t.Error("simulation never advanced")
	}
}

func TestPlayerStartsOnTheGround(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))

	g.Step(core.NewInputFrame())
	snap := g.Snapshot()
	if !snap.Grounded {
		t.Errorf("player should stand on the start surface, y=%v", snap.PlayerY)
	}
	if snap.State != StatePlaying {
		t.Errorf("expected playing state, got %s", snap.State)
	}
}

func TestScoreAccounting(t *testing.T) {
	g := New()
	g.Reset(testRuntime(99))

	input := core.NewInputFrame()
	for i := 0; i < 400 && !g.gameOver; i++ {
		input.Clear()
		if i%60 == 20 {
			input.Set(core.ActionJump)
		}
		g.Step(input)
	}

	snap := g.Snapshot()
	if snap.Distance == 0 {
		t.Fatal("distance should grow while scrolling")
	}
	if snap.Score != snap.Distance+snap.GapsCleared*gapBonus {
		t.Errorf("score %d does not match distance %d + %d gaps * %d",
			snap.Score, snap.Distance, snap.GapsCleared, gapBonus)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))

	input := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(input)
	}

	input.Set(core.ActionPause)
	g.Step(input)
	before := g.Snapshot()

	input.Clear()
	for i := 0; i < 50; i++ {
		g.Step(input)
	}
	after := g.Snapshot()

	if before.Tick != after.Tick || before.Distance != after.Distance {
		t.Error("paused game must not advance")
	}
	if !g.State().Paused {
		t.Error("state should report paused")
	}

	input.Set(core.ActionPause)
	g.Step(input)
	input.Clear()
	g.Step(input)
	if g.Snapshot().Tick == after.Tick {
		t.Error("unpausing should resume the simulation")
	}
}

func TestFallingThroughGapEndsRun(t *testing.T) {
	g := New()
	g.Reset(testRuntime(11))

	// Pull the whole floor out from under the player.
	g.fg.Strip().Fill(terrain.Tile{Height: 16, Type: terrain.TypeEmpty})

	input := core.NewInputFrame()
	for i := 0; i < 300 && !g.gameOver; i++ {
		g.Step(input)
	}

	if !g.gameOver {
		t.Fatal("player should fall below the screen and end the run")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("expected game over state, got %s", g.Snapshot().State)
	}

	// Further steps are no-ops.
	tick := g.Snapshot().Tick
	g.Step(input)
	if g.Snapshot().Tick != tick {
		t.Error("game over must freeze the simulation")
	}
}

func TestTooSmallScreenPauses(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 10, TickRate: 60})

	if !g.State().Paused {
		t.Error("undersized screen should report paused")
	}
	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != 0 {
		t.Error("undersized screen must not simulate")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("expected small-window state, got %s", g.Snapshot().State)
	}
}

func TestRenderDrawsSceneAndHUD(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if len(out) == 0 {
		t.Fatal("render produced nothing")
	}

	// HUD row carries the score.
	if row := screen.Row(0); !strings.Contains(row, "Score") {
		t.Errorf("HUD row missing score: %q", row)
	}
}

func TestResetRestartsCleanly(t *testing.T) {
	g := New()
	g.Reset(testRuntime(21))

	input := core.NewInputFrame()
	for i := 0; i < 200; i++ {
		g.Step(input)
	}

	g.Reset(testRuntime(21))
	snap := g.Snapshot()
	if snap.Tick != 0 || snap.Score != 0 || snap.Distance != 0 {
		t.Errorf("reset should zero the run, got %+v", snap)
	}
	if snap.State != StatePlaying {
		t.Errorf("reset game should be playing, got %s", snap.State)
	}
}
