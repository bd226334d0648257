// Package scroll moves the tile field downward and counts how far the player got.
package scroll

import (
	"github.com/vovakirdan/falling-world/internal/physics"
	"github.com/vovakirdan/falling-world/internal/sprite"
)

// NoTile is the LastTile value before any tile has left the playfield.
const NoTile = -1

// Params controls scroll speed.
type Params struct {
	// Acceleration is the per-second gain in scroll speed at ReferenceRate steps
	// per second. Fixed mode adds Acceleration/ReferenceRate every step.
	Acceleration  float64
	TimeScaled    bool
	ReferenceRate float64
}

// DefaultParams matches the classic tuning.
func DefaultParams() Params {
	return Params{Acceleration: 10, ReferenceRate: 60}
}

// Tracker scrolls tiles and keeps the level counter.
type Tracker struct {
	Params Params
	// PlayfieldH is the bottom edge tiles cross when leaving the screen.
	PlayfieldH float64
	// Level counts rows that have crossed the bottom edge.
	Level int
	// LastTile is the index of the most recently crossed tile.
	LastTile int
}

// NewTracker creates a tracker with no tiles crossed yet.
func NewTracker(p Params, playfieldH float64) *Tracker {
	return &Tracker{
		Params:     p,
		PlayfieldH: playfieldH,
		LastTile:   NoTile,
	}
}

// Reset clears the counters.
func (t *Tracker) Reset() {
	t.Level = 0
	t.LastTile = NoTile
}

// Step moves every tile down and returns true when the level counter advanced.
//
// The crossed tile is the first tile in set order whose top edge is below
// the playfield. Tiles are loaded top row first, so that is the highest
// crossed tile and it changes once per row. Crossed tiles stay in the set.
func (t *Tracker) Step(tiles *sprite.Set, dt float64) bool {
	step := t.Params.Acceleration
	if t.Params.ReferenceRate > 0 {
		step /= t.Params.ReferenceRate
	}
	dv := physics.Impulse(step, t.Params.TimeScaled, t.Params.ReferenceRate, dt)

	curr := NoTile
	for i, tile := range tiles.All() {
		tile.Vel.Y += dv
		physics.IntegrateAxis(tile, physics.AxisY, dt)
		if curr == NoTile && tile.Rect.Y > t.PlayfieldH {
			curr = i
		}
	}

	if curr == t.LastTile {
		return false
	}
	t.LastTile = curr
	t.Level++
	return true
}

// Speed returns the current scroll velocity, or 0 with no tiles.
func Speed(tiles *sprite.Set) float64 {
	if tiles.Len() == 0 {
		return 0
	}
	return tiles.At(0).Vel.Y
}
