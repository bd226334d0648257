// Package physics integrates body motion: gravity, terminal velocity and per-axis movement.
package physics

import "github.com/vovakirdan/falling-world/internal/sprite"

// Axis selects the coordinate a step works on.
type Axis int8

const (
	AxisX Axis = iota
	AxisY
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	default:
		return "Unknown"
	}
}

// Params holds gravity settings. Velocities are pixels per second.
type Params struct {
	// Gravity is added to vy once per step.
	Gravity float64
	// MaxFallSpeed caps vy after gravity is applied.
	MaxFallSpeed float64
	// TimeScaled makes Gravity a per-second rate at ReferenceRate steps per second
	// instead of a fixed per-step impulse.
	TimeScaled    bool
	ReferenceRate float64
}

// DefaultParams matches the classic tuning at 60 steps per second.
func DefaultParams() Params {
	return Params{
		Gravity:       32,
		MaxFallSpeed:  600,
		ReferenceRate: 60,
	}
}

// Impulse returns the velocity change for one step.
// In fixed mode it is amount; in time-scaled mode it is amount·dt·refRate,
// which equals amount when dt is exactly 1/refRate.
func Impulse(amount float64, timeScaled bool, refRate, dt float64) float64 {
	if !timeScaled || refRate <= 0 {
		return amount
	}
	return amount * dt * refRate
}

// ApplyGravity adds one gravity impulse to vy, then clamps it to MaxFallSpeed.
func ApplyGravity(b *sprite.Body, p Params, dt float64) {
	b.Vel.Y += Impulse(p.Gravity, p.TimeScaled, p.ReferenceRate, dt)
	if b.Vel.Y > p.MaxFallSpeed {
		b.Vel.Y = p.MaxFallSpeed
	}
}

// IntegrateAxis advances the body along one axis by velocity·dt.
func IntegrateAxis(b *sprite.Body, axis Axis, dt float64) {
	switch axis {
	case AxisX:
		b.Rect.X += b.Vel.X * dt
	case AxisY:
		b.Rect.Y += b.Vel.Y * dt
	}
}
