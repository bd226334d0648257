package config

// Ramp turns a difficulty section into a scroll acceleration curve.
// The level counter drives "score" progression, running frames drive "time".
type Ramp struct {
	progression ProgressionConfig
	multiplier  float64
	start       float64
	enabled     bool
}

// NewRamp builds a ramp. The initial level is clamped to [0, 1].
func NewRamp(cfg DifficultyConfig) Ramp {
	enabled := cfg.Enabled
	switch cfg.Progression.Type {
	case "score", "time":
	default:
		enabled = false
	}
	return Ramp{
		progression: cfg.Progression,
		multiplier:  cfg.Scaling.SpeedMultiplier,
		start:       min(max(cfg.InitialLevel, 0), 1),
		enabled:     enabled,
	}
}

// Enabled reports whether the ramp changes anything.
func (r Ramp) Enabled() bool { return r.enabled }

// Progress returns the difficulty in [start, 1] after reaching level after
// ticks running frames.
func (r Ramp) Progress(level, ticks int) float64 {
	if !r.enabled {
		return r.start
	}

	n := level
	if r.progression.Type == "time" {
		n = ticks
	}
	maxAt := max(r.progression.MaxAt, 1)
	t := min(float64(n)/float64(maxAt), 1)

	return r.start + t*(1-r.start)
}

// Acceleration scales the base scroll acceleration. A disabled ramp
// returns base unchanged.
func (r Ramp) Acceleration(base float64, level, ticks int) float64 {
	if !r.enabled {
		return base
	}
	return base * (1 + r.Progress(level, ticks)*r.multiplier)
}
