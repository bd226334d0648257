package config

import (
	_ "embed"
)

//go:embed defaults/falling.yaml
var defaultFallingYAML []byte

// DefaultFallingConfig returns the classic 600x400 tuning at 60 steps per second.
func DefaultFallingConfig() FallingConfig {
	return FallingConfig{
		Playfield: PlayfieldConfig{
			Width:  600,
			Height: 400,
		},
		Tile: TileConfig{
			Size: 32,
		},
		Player: PlayerConfig{
			SpawnX: 30,
			SpawnY: 30,
			Width:  32,
			Height: 32,
			Hitbox: HitboxConfig{
				InsetX: 8,
				InsetY: 8,
				Width:  16,
				Height: 24,
			},
		},
		Physics: PhysicsConfig{
			Gravity:       32,
			MaxFallSpeed:  600,
			MoveSpeed:     150,
			JumpImpulse:   -400,
			ReferenceRate: 60,
			TimeScaled:    false,
			MaxFrameTime:  0.03,
		},
		Scroll: ScrollConfig{
			Acceleration: 10,
		},
		Controls: ControlsConfig{
			HoldMS: 200,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultFallingYAML
}
