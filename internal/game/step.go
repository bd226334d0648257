package game

import (
	"github.com/vovakirdan/falling-world/internal/collision"
	"github.com/vovakirdan/falling-world/internal/core"
	"github.com/vovakirdan/falling-world/internal/physics"
	"github.com/vovakirdan/falling-world/internal/sprite"
)

var _ core.Simulation = (*Context)(nil)

// Step advances the game by one frame of dt seconds.
//
// Order within a frame: exit, debug pause, restart, then the running update.
// A restart frame runs the running update immediately after the reset.
func (c *Context) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionExit) {
		return core.StepResult{State: c.State(), Exit: true}
	}

	if c.debug && in.Has(core.ActionPause) {
		c.paused = !c.paused
		c.logger.Debug("pause toggled", "paused", c.paused)
	}
	if c.paused {
		return core.StepResult{State: c.State()}
	}

	dt = c.clampFrameTime(dt)
	c.lastStep = dt

	if c.status != StatusRunning && in.Has(core.ActionRestart) {
		c.Reset()
	}

	if c.status == StatusRunning {
		c.runFrame(in, dt)
	}

	return core.StepResult{State: c.State()}
}

func (c *Context) clampFrameTime(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if limit := c.cfg.Physics.MaxFrameTime; limit > 0 && dt > limit {
		return limit
	}
	return dt
}

// runFrame is one Running update. Scrolling and input wait until the player
// has landed once; gravity and collision always run.
func (c *Context) runFrame(in core.InputFrame, dt float64) {
	c.ticks++
	p := &c.player

	if c.ready {
		if c.ramp.Enabled() {
			c.tracker.Params.Acceleration = c.ramp.Acceleration(c.cfg.Scroll.Acceleration, c.tracker.Level, c.ticks)
		}
		if c.tracker.Step(c.tiles, dt) {
			c.logger.Debug("level up", "level", c.tracker.Level, "tile", c.tracker.LastTile)
		}
		c.movePlayer(in)
	}

	physics.ApplyGravity(&p.Body, c.physics, dt)

	physics.IntegrateAxis(&p.Body, physics.AxisY, dt)
	p.Grounded = collision.ResolveY(&p.Body, c.tiles, c.geom)
	physics.IntegrateAxis(&p.Body, physics.AxisX, dt)
	collision.ResolveX(&p.Body, c.tiles, c.geom)

	if !c.ready && p.Grounded {
		c.ready = true
		c.logger.Debug("player landed", "x", p.Rect.X, "y", p.Rect.Y, "ticks", c.ticks)
	}

	if !EnforceBoundaries(&p.Body, c.cfg.Playfield.Width, c.cfg.Playfield.Height) {
		c.status = StatusGameOver
		c.logger.With(c.Snapshot().KeyVals()...).Info("game over")
	}
}

// movePlayer maps held/pressed actions onto the player's velocity.
// Horizontal velocity resets every frame for a snappy start and stop.
func (c *Context) movePlayer(in core.InputFrame) {
	p := &c.player
	speed := c.cfg.Physics.MoveSpeed

	p.Vel.X = 0
	switch {
	case in.IsHeld(core.ActionMoveRight):
		p.Vel.X = speed
		p.Facing = sprite.FacingRight
	case in.IsHeld(core.ActionMoveLeft):
		p.Vel.X = -speed
		p.Facing = sprite.FacingLeft
	}

	if p.Grounded && in.Has(core.ActionJump) {
		p.Vel.Y = c.cfg.Physics.JumpImpulse
	}
}

// EnforceBoundaries keeps a body inside a w×h playfield.
// It returns false when the body's bottom has dropped below the playfield,
// otherwise it clamps x into [0, w-width] and returns true.
func EnforceBoundaries(b *sprite.Body, w, h float64) bool {
	if b.Rect.Bottom() > h {
		return false
	}
	b.Rect.X = core.ClampF(b.Rect.X, 0, w-b.Rect.W)
	return true
}
