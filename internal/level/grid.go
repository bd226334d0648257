// Package level turns tile flag grids into tile bodies and loads level definitions.
package level

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/falling-world/internal/core"
	"github.com/vovakirdan/falling-world/internal/sprite"
)

// Grid is a fixed W×H array of tile flags in row-major order.
// Any value > 0 marks a tile.
type Grid struct {
	W, H  int
	Cells []uint8
}

// NewGrid creates a grid, checking that cells matches the declared size.
func NewGrid(w, h int, cells []uint8) (Grid, error) {
	if w <= 0 || h <= 0 {
		return Grid{}, fmt.Errorf("level: invalid grid size %dx%d", w, h)
	}
	if len(cells) != w*h {
		return Grid{}, fmt.Errorf("level: grid %dx%d needs %d cells, got %d", w, h, w*h, len(cells))
	}
	owned := make([]uint8, len(cells))
	copy(owned, cells)
	return Grid{W: w, H: h, Cells: owned}, nil
}

// MustGrid is NewGrid for compile-time constant grids. Panics on a size mismatch.
func MustGrid(w, h int, cells []uint8) Grid {
	g, err := NewGrid(w, h, cells)
	if err != nil {
		panic(err)
	}
	return g
}

// ParseRows builds a grid from text rows, one string per row.
// '#' and '1' mark a tile, '.', '0' and ' ' mark empty space.
func ParseRows(rows []string) (Grid, error) {
	if len(rows) == 0 {
		return Grid{}, fmt.Errorf("level: no rows")
	}
	w := len(rows[0])
	cells := make([]uint8, 0, w*len(rows))
	for r, row := range rows {
		if len(row) != w {
			return Grid{}, fmt.Errorf("level: row %d has width %d, expected %d", r, len(row), w)
		}
		for c, ch := range []byte(row) {
			switch ch {
			case '#', '1':
				cells = append(cells, 1)
			case '.', '0', ' ':
				cells = append(cells, 0)
			default:
				return Grid{}, fmt.Errorf("level: row %d col %d: unexpected %q", r, c, ch)
			}
		}
	}
	return NewGrid(w, len(rows), cells)
}

// At returns the flag at column c, row r. Out-of-range cells are empty.
func (g Grid) At(c, r int) uint8 {
	if c < 0 || c >= g.W || r < 0 || r >= g.H {
		return 0
	}
	return g.Cells[r*g.W+c]
}

// Filled returns the number of tile cells.
func (g Grid) Filled() int {
	n := 0
	for _, v := range g.Cells {
		if v > 0 {
			n++
		}
	}
	return n
}

// Rows renders the grid back into '#'/'.' rows.
func (g Grid) Rows() []string {
	rows := make([]string, g.H)
	var sb strings.Builder
	for r := 0; r < g.H; r++ {
		sb.Reset()
		for c := 0; c < g.W; c++ {
			if g.At(c, r) > 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[r] = sb.String()
	}
	return rows
}

// Load emits one static tile body per flagged cell, in row-major order.
// The grid is trusted: use NewGrid to validate shapes before loading.
func Load(g Grid, tileSize float64, tex core.Texture) *sprite.Set {
	tiles := sprite.NewSet()
	for i, v := range g.Cells {
		if v == 0 {
			continue
		}
		x := float64(i%g.W) * tileSize
		y := float64(i/g.W) * tileSize
		tiles.Append(sprite.NewBody(core.NewRect(x, y, tileSize, tileSize), tex))
	}
	return tiles
}
