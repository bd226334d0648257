// Package builtin registers the levels compiled into the binary.
// Import it for side effects.
package builtin

import (
	"github.com/vovakirdan/falling-world/internal/level"
	"github.com/vovakirdan/falling-world/internal/registry"
)

// DefaultID is the level played when none is chosen.
const DefaultID = "falling"

const (
	fallingW = 18
	fallingH = 13
)

// fallingCells is the classic staircase level.
var fallingCells = []uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 1, 1, 0,
	0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

var zigzagRows = []string{
	"..................",
	"..................",
	"..................",
	"#####.............",
	"..................",
	".........######...",
	"..................",
	"..................",
	"###...............",
	"..................",
	"........#######...",
	"..................",
	"..............####",
}

var funnelRows = []string{
	"..................",
	"..................",
	"..................",
	"..................",
	"##..............##",
	"..##..........##..",
	"....##......##....",
	"......##..##......",
	"..................",
	"...####....####...",
	"..................",
	"#######....#######",
	"..................",
}

func init() {
	registry.Register(DefaultID, func() level.Level {
		return level.Level{
			ID:   DefaultID,
			Name: "Falling World",
			Grid: level.MustGrid(fallingW, fallingH, fallingCells),
		}
	})
	registry.Register("zigzag", rowsFactory("zigzag", "Zigzag", zigzagRows))
	registry.Register("funnel", rowsFactory("funnel", "Funnel", funnelRows))
}

func rowsFactory(id, name string, rows []string) registry.Factory {
	return func() level.Level {
		g, err := level.ParseRows(rows)
		if err != nil {
			panic(err)
		}
		return level.Level{ID: id, Name: name, Grid: g}
	}
}
