// Package config provides YAML/TOML game configuration loading and
// difficulty management for the falling world.
package config

import (
	"errors"
	"fmt"
)

// FallingConfig contains all tuning for the game.
// Distances are pixels, velocities pixels per second.
type FallingConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield" toml:"playfield"`
	Tile       TileConfig       `yaml:"tile" toml:"tile"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Scroll     ScrollConfig     `yaml:"scroll" toml:"scroll"`
	Controls   ControlsConfig   `yaml:"controls" toml:"controls"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// PlayfieldConfig defines the visible area.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// TileConfig defines the level grid cell size.
type TileConfig struct {
	Size float64 `yaml:"size" toml:"size"`
}

// PlayerConfig defines the player sprite and its hitbox.
type PlayerConfig struct {
	SpawnX float64      `yaml:"spawn_x" toml:"spawn_x"`
	SpawnY float64      `yaml:"spawn_y" toml:"spawn_y"`
	Width  float64      `yaml:"width" toml:"width"`
	Height float64      `yaml:"height" toml:"height"`
	Hitbox HitboxConfig `yaml:"hitbox" toml:"hitbox"`
}

// HitboxConfig is the collision rectangle inset inside the sprite.
type HitboxConfig struct {
	InsetX float64 `yaml:"inset_x" toml:"inset_x"`
	InsetY float64 `yaml:"inset_y" toml:"inset_y"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PhysicsConfig defines player motion.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity" toml:"gravity"`               // added to vy every step
	MaxFallSpeed float64 `yaml:"max_fall_speed" toml:"max_fall_speed"` // terminal velocity
	MoveSpeed    float64 `yaml:"move_speed" toml:"move_speed"`
	JumpImpulse  float64 `yaml:"jump_impulse" toml:"jump_impulse"` // negative is up
	// ReferenceRate is the step rate the impulses were tuned for.
	ReferenceRate float64 `yaml:"reference_rate" toml:"reference_rate"`
	// TimeScaled scales gravity and scroll acceleration by dt instead of
	// applying them once per step.
	TimeScaled bool `yaml:"time_scaled" toml:"time_scaled"`
	// MaxFrameTime caps dt, in seconds.
	MaxFrameTime float64 `yaml:"max_frame_time" toml:"max_frame_time"`
}

// ScrollConfig defines how the tile field falls.
type ScrollConfig struct {
	Acceleration float64 `yaml:"acceleration" toml:"acceleration"` // pixels/s²
}

// ControlsConfig defines input handling.
type ControlsConfig struct {
	// HoldMS is how long a key counts as held after its last key event.
	// Terminals report presses and repeats but no releases.
	HoldMS int `yaml:"hold_ms" toml:"hold_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Level count or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Added to scroll acceleration at max difficulty
}

// Validate rejects configurations the simulation cannot run with.
func (c FallingConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("playfield.width", c.Playfield.Width)
	positive("playfield.height", c.Playfield.Height)
	positive("tile.size", c.Tile.Size)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.hitbox.width", c.Player.Hitbox.Width)
	positive("player.hitbox.height", c.Player.Hitbox.Height)
	positive("physics.max_fall_speed", c.Physics.MaxFallSpeed)
	positive("physics.reference_rate", c.Physics.ReferenceRate)
	positive("physics.max_frame_time", c.Physics.MaxFrameTime)

	h := c.Player.Hitbox
	if h.InsetX < 0 || h.InsetY < 0 ||
		h.InsetX+h.Width > c.Player.Width || h.InsetY+h.Height > c.Player.Height {
		errs = append(errs, fmt.Errorf("player.hitbox must lie inside the %vx%v sprite",
			c.Player.Width, c.Player.Height))
	}
	// One clamped frame must not carry the hitbox past a tile edge, or
	// collision resolves the overlap from the wrong side.
	if step := max(c.Physics.MaxFallSpeed, -c.Physics.JumpImpulse) * c.Physics.MaxFrameTime; step > h.Height {
		errs = append(errs, fmt.Errorf("physics.max_frame_time %v lets the player move %vpx in one frame, more than the %vpx hitbox height",
			c.Physics.MaxFrameTime, step, h.Height))
	}
	if step := c.Physics.MoveSpeed * c.Physics.MaxFrameTime; step > h.Width {
		errs = append(errs, fmt.Errorf("physics.max_frame_time %v lets the player move %vpx sideways in one frame, more than the %vpx hitbox width",
			c.Physics.MaxFrameTime, step, h.Width))
	}
	if c.Player.Width > c.Playfield.Width {
		errs = append(errs, fmt.Errorf("player is wider than the playfield"))
	}
	if c.Controls.HoldMS < 0 {
		errs = append(errs, fmt.Errorf("controls.hold_ms must not be negative"))
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of score, time, none",
			c.Difficulty.Progression.Type))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", name)
	}
}

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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
