package game

// Snapshot contains the complete game state for tests and debug logging.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Status    string
	Level     int
	LastTile  int
	Ready     bool
	Paused    bool
	Ticks     int
	FrameTime float64

	PlayerX, PlayerY   float64
	PlayerVX, PlayerVY float64
	Facing             string
	Grounded           bool

	// Tile positions (each tile is 3 floats: X, Y, VY)
	TileCount int
	TileData  []float64
}

// Snapshot returns the current game state as a Snapshot.
func (c *Context) Snapshot() Snapshot {
	tileData := make([]float64, 0, c.tiles.Len()*3)
	for _, tile := range c.tiles.All() {
		tileData = append(tileData, tile.Rect.X, tile.Rect.Y, tile.Vel.Y)
	}

	p := c.player
	return Snapshot{
		Status:    c.status.String(),
		Level:     c.tracker.Level,
		LastTile:  c.tracker.LastTile,
		Ready:     c.ready,
		Paused:    c.paused,
		Ticks:     c.ticks,
		FrameTime: c.lastStep,
		PlayerX:   p.Rect.X,
		PlayerY:   p.Rect.Y,
		PlayerVX:  p.Vel.X,
		PlayerVY:  p.Vel.Y,
		Facing:    p.Facing.String(),
		Grounded:  p.Grounded,
		TileCount: c.tiles.Len(),
		TileData:  tileData,
	}
}

// KeyVals flattens the headline fields for structured logging.
func (s Snapshot) KeyVals() []any {
	return []any{
		"status", s.Status,
		"level", s.Level,
		"ticks", s.Ticks,
		"x", s.PlayerX,
		"y", s.PlayerY,
		"grounded", s.Grounded,
		"ready", s.Ready,
	}
}
