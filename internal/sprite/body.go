// Package sprite holds rectangular game bodies and the ordered set that owns them.
package sprite

import "github.com/vovakirdan/falling-world/internal/core"

// Facing is the horizontal direction a body looks at.
type Facing int8

const (
	FacingRight Facing = 1
	FacingLeft  Facing = -1
)

// String returns a human-readable name for the facing.
func (f Facing) String() string {
	switch f {
	case FacingRight:
		return "Right"
	case FacingLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Flipped reports whether a texture drawn for this facing must be mirrored.
// Textures are authored looking right.
func (f Facing) Flipped() bool {
	switch f {
	case FacingLeft:
		return true
	case FacingRight:
		return false
	default:
		return false
	}
}

// Body is a rectangular game entity: the player or a tile.
// Velocity is in pixels per second.
type Body struct {
	Rect    core.Rect
	Vel     core.Vec2
	Facing  Facing
	Texture core.Texture
}

// NewBody creates a motionless body facing right.
func NewBody(rect core.Rect, tex core.Texture) Body {
	return Body{
		Rect:    rect,
		Facing:  FacingRight,
		Texture: tex,
	}
}

// DrawCommand returns the renderer command for this body.
func (b Body) DrawCommand() core.DrawCommand {
	return core.DrawCommand{
		Rect:    b.Rect,
		Texture: b.Texture,
		FlipX:   b.Facing.Flipped(),
	}
}
