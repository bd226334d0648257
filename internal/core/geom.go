// Package core holds the types shared by the simulation and its frontends:
// playfield geometry, input frames, the character screen and draw commands.
// It has no terminal dependencies.
package core

// Rect is an axis-aligned box in playfield pixels, Y growing downward.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the x coordinate just past the box.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom is the y coordinate just past the box.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Intersects reports a strict overlap. Boxes that only touch along an edge
// do not intersect, so a body resting exactly on a tile is not colliding.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Offset returns the rectangle moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Vec2 is a velocity in pixels per second.
type Vec2 struct {
	X, Y float64
}

// ClampF limits v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
