// Package game implements the falling world simulation: a player dropping
// through a scrolling tile field, with a Beginning/Running/GameOver lifecycle.
//
// The Context contains pure logic with no terminal dependencies. Platform
// adapters feed it an InputFrame and a frame time, then draw what Render or
// DrawCommands produce.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/falling-world/internal/collision"
	"github.com/vovakirdan/falling-world/internal/config"
	"github.com/vovakirdan/falling-world/internal/core"
	"github.com/vovakirdan/falling-world/internal/level"
	"github.com/vovakirdan/falling-world/internal/physics"
	"github.com/vovakirdan/falling-world/internal/scroll"
	"github.com/vovakirdan/falling-world/internal/sprite"
)

// Status is the lifecycle phase of a game.
type Status int8

const (
	StatusBeginning Status = iota + 1
	StatusRunning
	StatusGameOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusBeginning:
		return "Beginning"
	case StatusRunning:
		return "Running"
	case StatusGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Default texture handles used by DefaultAtlas.
const (
	TexturePlayer core.Texture = 1
	TextureTile   core.Texture = 2
)

// Player is the controllable body. Grounded is written only by collision resolution.
type Player struct {
	sprite.Body
	Grounded bool
}

// Context owns one game: the player, the active tile set and the counters.
type Context struct {
	cfg   config.FallingConfig
	level level.Level

	status   Status
	player   Player
	tiles    *sprite.Set
	tracker  *scroll.Tracker
	ready    bool
	paused   bool
	debug    bool
	ticks    int
	lastStep float64

	physics physics.Params
	geom    collision.Geometry
	ramp    config.Ramp

	playerTex core.Texture
	tileTex   core.Texture
	atlas     core.Atlas

	logger *log.Logger
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDebug enables the pause toggle.
func WithDebug(debug bool) Option {
	return func(c *Context) {
		c.debug = debug
	}
}

// WithTextures sets the opaque handles attached to the player and tiles.
func WithTextures(player, tile core.Texture) Option {
	return func(c *Context) {
		c.playerTex = player
		c.tileTex = tile
	}
}

// WithAtlas sets how textures look when rendered into a Screen.
func WithAtlas(a core.Atlas) Option {
	return func(c *Context) {
		c.atlas = a
	}
}

// NewContext creates a game waiting on the title screen.
// cfg is expected to have passed Validate.
func NewContext(cfg config.FallingConfig, lvl level.Level, opts ...Option) *Context {
	c := &Context{
		cfg:       cfg,
		level:     lvl,
		status:    StatusBeginning,
		playerTex: TexturePlayer,
		tileTex:   TextureTile,
		atlas:     DefaultAtlas(),
		logger:    log.New(io.Discard),
		physics: physics.Params{
			Gravity:       cfg.Physics.Gravity,
			MaxFallSpeed:  cfg.Physics.MaxFallSpeed,
			TimeScaled:    cfg.Physics.TimeScaled,
			ReferenceRate: cfg.Physics.ReferenceRate,
		},
		geom: collision.Geometry{
			InsetX:  cfg.Player.Hitbox.InsetX,
			InsetY:  cfg.Player.Hitbox.InsetY,
			HitboxW: cfg.Player.Hitbox.Width,
			HitboxH: cfg.Player.Hitbox.Height,
		},
		ramp: config.NewRamp(cfg.Difficulty),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.tracker = scroll.NewTracker(c.scrollParams(), cfg.Playfield.Height)
	c.placePlayer()
	c.tiles = level.Load(lvl.Grid, cfg.Tile.Size, c.tileTex)

	return c
}

// Reset starts a fresh run: tiles reloaded, player back at spawn, counters cleared.
func (c *Context) Reset() {
	c.status = StatusRunning
	c.placePlayer()
	c.tiles = level.Load(c.level.Grid, c.cfg.Tile.Size, c.tileTex)
	c.tracker.Params = c.scrollParams()
	c.tracker.Reset()
	c.ready = false
	c.ticks = 0

	c.logger.With(c.Snapshot().KeyVals()...).Info("run started", "level_id", c.level.ID, "tiles", c.tiles.Len())
}

func (c *Context) placePlayer() {
	p := c.cfg.Player
	c.player = Player{
		Body: sprite.NewBody(core.NewRect(p.SpawnX, p.SpawnY, p.Width, p.Height), c.playerTex),
	}
}

func (c *Context) scrollParams() scroll.Params {
	return scroll.Params{
		Acceleration:  c.cfg.Scroll.Acceleration,
		TimeScaled:    c.cfg.Physics.TimeScaled,
		ReferenceRate: c.cfg.Physics.ReferenceRate,
	}
}

// Status returns the lifecycle phase.
func (c *Context) Status() Status { return c.status }

// Player returns a copy of the player.
func (c *Context) Player() Player { return c.player }

// Tiles returns the active tile set.
func (c *Context) Tiles() *sprite.Set { return c.tiles }

// Level returns the number of tile rows the player has survived past.
func (c *Context) Level() int { return c.tracker.Level }

// LastTile returns the index of the most recently crossed tile, or scroll.NoTile.
func (c *Context) LastTile() int { return c.tracker.LastTile }

// Ready reports whether the player has landed since the last reset.
func (c *Context) Ready() bool { return c.ready }

// Paused reports whether the debug pause is active.
func (c *Context) Paused() bool { return c.paused }

// Ticks returns the number of running frames since the last reset.
func (c *Context) Ticks() int { return c.ticks }

// LevelInfo returns the level being played.
func (c *Context) LevelInfo() level.Level { return c.level }

// Config returns the configuration the context was built with.
func (c *Context) Config() config.FallingConfig { return c.cfg }

// State returns the current game state.
func (c *Context) State() core.GameState {
	return core.GameState{
		Score:    c.tracker.Level,
		Running:  c.status == StatusRunning,
		GameOver: c.status == StatusGameOver,
		Paused:   c.paused,
	}
}
