// Package config provides YAML-based configuration loading and
// difficulty management for the runner.
package config

import "github.com/anterakt/palmrun/internal/terrain"

// Config contains all gameplay configuration.
type Config struct {
	Terrain    TerrainConfig    `yaml:"terrain"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TerrainConfig holds the per-layer generation parameters.
type TerrainConfig struct {
	Foreground LayerConfig `yaml:"foreground"`
	Background LayerConfig `yaml:"background"`
}

// RangeConfig is an inclusive integer interval.
type RangeConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// LayerConfig defines the generation parameters of one terrain layer.
// The height band is relative: to the screen bottom for the foreground
// (negative = up), to the foreground height for the background.
type LayerConfig struct {
	HeightMin    int         `yaml:"height_min"`
	HeightMax    int         `yaml:"height_max"`
	HoldSurface  RangeConfig `yaml:"hold_surface"`
	HoldBridge   RangeConfig `yaml:"hold_bridge"`
	HoldGap      RangeConfig `yaml:"hold_gap"`
	SlopeWait    RangeConfig `yaml:"slope_wait"`
	BridgeChance float64     `yaml:"bridge_chance"`
	DecorWait    RangeConfig `yaml:"decor_wait"`
	Shift        int         `yaml:"shift"` // static horizontal render offset
}

// Params converts the layer config into generator parameters. The
// height band is passed through as-is; callers resolve what it is
// relative to.
func (lc LayerConfig) Params() terrain.Params {
	r := func(rc RangeConfig) terrain.Range {
		return terrain.Range{Min: rc.Min, Max: rc.Max}
	}
	return terrain.Params{
		Height:       terrain.Range{Min: lc.HeightMin, Max: lc.HeightMax},
		HoldSurface:  r(lc.HoldSurface),
		HoldBridge:   r(lc.HoldBridge),
		HoldGap:      r(lc.HoldGap),
		SlopeWait:    r(lc.SlopeWait),
		BridgeChance: lc.BridgeChance,
		DecorWait:    r(lc.DecorWait),
	}
}

// PhysicsConfig defines player physics parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
}

// PlayerConfig defines player placement and size.
type PlayerConfig struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
