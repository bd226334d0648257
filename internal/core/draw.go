package core

import "math"

// Texture is an opaque handle attached to bodies and passed through to the
// renderer untouched. The simulation never looks inside it.
type Texture uint32

// TextureNone is the zero handle; it renders as nothing.
const TextureNone Texture = 0

// DrawCommand asks the renderer to draw a textured rectangle in playfield pixels.
type DrawCommand struct {
	Rect    Rect
	Texture Texture
	FlipX   bool // Mirror the texture horizontally (sprite facing left)
}

// Glyph is how a texture looks in a character cell.
type Glyph struct {
	Rune     rune
	FlipRune rune // Used when FlipX is set; zero means same as Rune
	Color    Color
}

// Atlas maps texture handles to glyphs for a character renderer.
type Atlas map[Texture]Glyph

// Viewport maps playfield pixels onto screen cells.
type Viewport struct {
	PlayfieldW, PlayfieldH float64
	ScreenW, ScreenH       int
}

// CellRect returns the cell span covered by a playfield rectangle.
// Edges are rounded so that adjacent rectangles tile without gaps or overlap;
// any visible rectangle covers at least one cell.
func (v Viewport) CellRect(r Rect) (x, y, w, h int) {
	if v.PlayfieldW <= 0 || v.PlayfieldH <= 0 {
		return 0, 0, 0, 0
	}
	sx := float64(v.ScreenW) / v.PlayfieldW
	sy := float64(v.ScreenH) / v.PlayfieldH

	x0 := int(math.Round(r.X * sx))
	y0 := int(math.Round(r.Y * sy))
	x1 := int(math.Round(r.Right() * sx))
	y1 := int(math.Round(r.Bottom() * sy))

	return x0, y0, max(x1-x0, 1), max(y1-y0, 1)
}

// Rasterize draws every command onto the screen in order, so later commands
// paint over earlier ones.
func Rasterize(dst *Screen, v Viewport, atlas Atlas, cmds []DrawCommand) {
	for _, cmd := range cmds {
		g, ok := atlas[cmd.Texture]
		if !ok || cmd.Texture == TextureNone {
			continue
		}
		r := g.Rune
		if cmd.FlipX && g.FlipRune != 0 {
			r = g.FlipRune
		}
		x, y, w, h := v.CellRect(cmd.Rect)
		dst.DrawRect(x, y, w, h, r, g.Color)
	}
}
