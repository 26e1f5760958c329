package config

import (
	_ "embed"
)

//go:embed defaults/palmrun.yaml
var defaultYAML []byte

// DefaultConfig returns the default runner configuration.
func DefaultConfig() Config {
	return Config{
		Terrain: TerrainConfig{
			Foreground: LayerConfig{
				HeightMin:    -12,
				HeightMax:    -4,
				HoldSurface:  RangeConfig{Min: 8, Max: 24},
				HoldBridge:   RangeConfig{Min: 3, Max: 6},
				HoldGap:      RangeConfig{Min: 2, Max: 4},
				SlopeWait:    RangeConfig{Min: 2, Max: 12},
				BridgeChance: 0.33,
				DecorWait:    RangeConfig{Min: 6, Max: 18},
				Shift:        0,
			},
			Background: LayerConfig{
				HeightMin:    -9,
				HeightMax:    0,
				HoldSurface:  RangeConfig{Min: 12, Max: 30},
				HoldBridge:   RangeConfig{Min: 3, Max: 5},
				HoldGap:      RangeConfig{Min: 2, Max: 3},
				SlopeWait:    RangeConfig{Min: 2, Max: 12},
				BridgeChance: 0.0,
				DecorWait:    RangeConfig{Min: 8, Max: 20},
				Shift:        1,
			},
		},
		Physics: PhysicsConfig{
			Gravity:      0.12,
			JumpImpulse:  -0.95,
			MaxFallSpeed: 1.2,
			BaseSpeed:    0.25,
		},
		Player: PlayerConfig{
			X:      10,
			Width:  2,
			Height: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}
