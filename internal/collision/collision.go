// Package collision resolves overlaps between the player hitbox and tiles, one axis at a time.
//
// Each resolve pass computes the hitbox once, then tests every tile in set order.
// Every overlapping tile writes back a corrected position, so with several
// overlaps the last tile in order wins. Levels built on a uniform grid rarely
// produce more than one overlap per axis.
package collision

import (
	"github.com/vovakirdan/falling-world/internal/core"
	"github.com/vovakirdan/falling-world/internal/sprite"
)

// Geometry describes the hitbox as an inset sub-rectangle of the sprite.
type Geometry struct {
	InsetX  float64
	InsetY  float64
	HitboxW float64
	HitboxH float64
}

// DefaultGeometry fits the 32×32 hero sprite.
func DefaultGeometry() Geometry {
	return Geometry{InsetX: 8, InsetY: 8, HitboxW: 16, HitboxH: 24}
}

// Hitbox returns the collision rectangle for a sprite rectangle.
func (g Geometry) Hitbox(r core.Rect) core.Rect {
	return core.NewRect(r.X+g.InsetX, r.Y+g.InsetY, g.HitboxW, g.HitboxH)
}

// Fits reports whether the hitbox lies within a sprite of size w×h.
func (g Geometry) Fits(w, h float64) bool {
	return g.InsetX >= 0 && g.InsetY >= 0 &&
		g.HitboxW > 0 && g.HitboxH > 0 &&
		g.InsetX+g.HitboxW <= w && g.InsetY+g.HitboxH <= h
}

// ResolveY pushes the player out of tiles vertically and reports whether it
// ended up standing on one. The result is the player's grounded state for
// this frame.
func ResolveY(player *sprite.Body, tiles *sprite.Set, g Geometry) bool {
	grounded := false
	hb := g.Hitbox(player.Rect)

	for _, tile := range tiles.All() {
		if !hb.Intersects(tile.Rect) {
			continue
		}
		if hb.Y > tile.Rect.Y {
			// Hit the underside: hitbox top goes to the tile bottom.
			player.Rect.Y = tile.Rect.Bottom() - g.InsetY
		} else {
			// Landed: hitbox bottom goes to the tile top.
			player.Rect.Y = tile.Rect.Y - (g.InsetY + g.HitboxH)
			grounded = true
		}
	}

	return grounded
}

// ResolveX pushes the player out of tiles horizontally.
func ResolveX(player *sprite.Body, tiles *sprite.Set, g Geometry) {
	hb := g.Hitbox(player.Rect)

	for _, tile := range tiles.All() {
		if !hb.Intersects(tile.Rect) {
			continue
		}
		if hb.X > tile.Rect.X {
			player.Rect.X = tile.Rect.Right() - g.InsetX
		} else {
			player.Rect.X = tile.Rect.X - (g.InsetX + g.HitboxW)
		}
	}
}
