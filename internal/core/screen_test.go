package core

import (
	"strings"
	"testing"
)

func TestScreenStartsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if got, want := s.String(), "      \n      \n      "; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}

	neg := NewScreen(-4, 2)
	if neg.Width() != 0 {
		t.Errorf("negative width should become 0, got %d", neg.Width())
	}
}

func TestScreenCellsClip(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(3, 1, '█', ColorBrown)
	s.Set(1, 0, '▶')

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.SetColored(p[0], p[1], 'X', ColorRed)
		if got := s.GetCell(p[0], p[1]); got.Rune != ' ' || got.Color != ColorDefault {
			t.Errorf("out-of-bounds cell %v = %+v, expected blank", p, got)
		}
	}

	if got := s.GetCell(3, 1); got.Rune != '█' || got.Color != ColorBrown {
		t.Errorf("GetCell(3, 1) = %+v, expected brown tile", got)
	}
	if got := s.Get(1, 0); got != '▶' {
		t.Errorf("Get(1, 0) = %q, expected player glyph", got)
	}
	if got := s.String(); got != " ▶  \n   █" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenDrawRectAndClear(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawRect(3, 2, 4, 4, '#', ColorGreen)

	if got := s.Row(2); got != "   ##" {
		t.Errorf("row 2 = %q, expected the rect clipped at the edge", got)
	}
	if got := s.GetCell(4, 3).Color; got != ColorGreen {
		t.Errorf("rect color = %v, expected green", got)
	}

	s.Clear()
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("Clear left content: %q", s.String())
	}
	if got := s.GetCell(4, 3).Color; got != ColorDefault {
		t.Errorf("Clear should reset colors, got %v", got)
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawText(17, 0, "Got to level: 3")
	s.DrawTextCentered(1, "Game Over")
	s.DrawTextCentered(2, "▶▶")

	if got := s.Row(0); !strings.HasSuffix(got, "Got") {
		t.Errorf("row 0 = %q, expected text clipped at the right edge", got)
	}
	if got := s.Row(1); got != "     Game Over      " {
		t.Errorf("row 1 = %q", got)
	}
	if got := s.Get(9, 2); got != '▶' {
		t.Errorf("centering should count runes, got %q at column 9", got)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 || s.Row(0) != "Hel" {
		t.Errorf("after shrink: %dx%d %q", s.Width(), s.Height(), s.Row(0))
	}

	s.Resize(8, 3)
	if got := s.Row(0); got != "Hel     " {
		t.Errorf("after grow row 0 = %q", got)
	}
	if got := s.Row(5); got != "        " {
		t.Errorf("out-of-range row = %q, expected blanks", got)
	}
}

func TestViewportCellRect(t *testing.T) {
	v := Viewport{PlayfieldW: 600, PlayfieldH: 400, ScreenW: 60, ScreenH: 20}

	tests := []struct {
		name       string
		r          Rect
		x, y, w, h int
	}{
		{"tile at origin", NewRect(0, 0, 32, 32), 0, 0, 3, 2},
		{"neighbour tile shares edge", NewRect(32, 0, 32, 32), 3, 0, 3, 2},
		{"tiny rect still visible", NewRect(100, 100, 1, 1), 10, 5, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, w, h := v.CellRect(tc.r)
			if x != tc.x || y != tc.y || w != tc.w || h != tc.h {
				t.Errorf("CellRect(%+v) = (%d,%d,%d,%d), expected (%d,%d,%d,%d)",
					tc.r, x, y, w, h, tc.x, tc.y, tc.w, tc.h)
			}
		})
	}
}

func TestRasterize(t *testing.T) {
	const (
		texTile   Texture = 1
		texPlayer Texture = 2
	)
	atlas := Atlas{
		texTile:   {Rune: '#', Color: ColorGreen},
		texPlayer: {Rune: '>', FlipRune: '<', Color: ColorYellow},
	}
	v := Viewport{PlayfieldW: 100, PlayfieldH: 100, ScreenW: 10, ScreenH: 10}
	s := NewScreen(10, 10)

	Rasterize(s, v, atlas, []DrawCommand{
		{Rect: NewRect(0, 0, 20, 20), Texture: texTile},
		{Rect: NewRect(10, 10, 10, 10), Texture: texPlayer, FlipX: true},
		{Rect: NewRect(50, 50, 10, 10), Texture: TextureNone},
	})

	if cell := s.GetCell(0, 0); cell.Rune != '#' || cell.Color != ColorGreen {
		t.Errorf("tile cell = %+v, expected green '#'", cell)
	}
	if s.Get(1, 1) != '<' {
		t.Errorf("flipped player should paint over tile, got %q", s.Get(1, 1))
	}
	if s.Get(5, 5) != ' ' {
		t.Errorf("TextureNone should not draw, got %q", s.Get(5, 5))
	}
}
