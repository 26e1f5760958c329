package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded config does not parse: %v", err)
	}

	if cfg != DefaultConfig() {
		t.Errorf("embedded config diverged from DefaultConfig:\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 0.5\n  base_speed: 0.4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 || cfg.Physics.BaseSpeed != 0.4 {
		t.Errorf("custom values not loaded: %+v", cfg.Physics)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing explicit config path should be an error")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset misapplied: %+v", cfg.Difficulty)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestLayerParamsConversion(t *testing.T) {
	lc := DefaultConfig().Terrain.Foreground
	p := lc.Params()

	if p.Height.Min != lc.HeightMin || p.Height.Max != lc.HeightMax {
		t.Errorf("height band mismatch: %+v", p.Height)
	}
	if p.HoldSurface.Min != lc.HoldSurface.Min || p.HoldSurface.Max != lc.HoldSurface.Max {
		t.Errorf("hold range mismatch: %+v", p.HoldSurface)
	}
	if p.BridgeChance != lc.BridgeChance {
		t.Errorf("bridge chance mismatch: %v", p.BridgeChance)
	}
}

func TestDifficultySpeedProgression(t *testing.T) {
	cfg := DefaultConfig().Difficulty
	d := NewDifficultyManager(cfg)

	base := 0.25
	start := d.Speed(base, 0, 0)
	if start != base {
		t.Errorf("level 0 should run at base speed, got %v", start)
	}

	max := d.Speed(base, cfg.Progression.MaxAt, 0)
	want := base * (1.0 + cfg.Scaling.SpeedMultiplier)
	if max != want {
		t.Errorf("max difficulty speed %v, want %v", max, want)
	}

	// Past the cap the level saturates.
	if d.Speed(base, cfg.Progression.MaxAt*10, 0) != max {
		t.Error("speed must not grow past max difficulty")
	}

	d.SetEnabled(false)
	if d.Speed(base, cfg.Progression.MaxAt, 0) != base {
		t.Error("disabled progression should stay at the initial level")
	}
}
