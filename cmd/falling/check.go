package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/falling-world/internal/config"
	"github.com/vovakirdan/falling-world/internal/level"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate level files",
	Long: `Parses each level file and reports its size and tile count.
Warns when the grid is wider or taller than the playfield, or when the
spawn column has no tile to land on.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range args {
		lvl, err := level.LoadFile(path)
		if err != nil {
			fmt.Printf("FAIL  %s: %v\n", path, err)
			failed++
			continue
		}

		fmt.Printf("ok    %s: %s (%q) %dx%d, %d tiles\n",
			path, lvl.ID, lvl.Name, lvl.Grid.W, lvl.Grid.H, lvl.Grid.Filled())
		for _, w := range levelWarnings(lvl, cfg) {
			fmt.Printf("      warning: %s\n", w)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

// levelWarnings reports layout problems that do not stop a level loading.
func levelWarnings(lvl level.Level, cfg config.FallingConfig) []string {
	var warnings []string

	tile := cfg.Tile.Size
	if w := float64(lvl.Grid.W) * tile; w > cfg.Playfield.Width {
		warnings = append(warnings, fmt.Sprintf("grid is %.0fpx wide, playfield is %.0fpx", w, cfg.Playfield.Width))
	}
	if h := float64(lvl.Grid.H) * tile; h > cfg.Playfield.Height {
		warnings = append(warnings, fmt.Sprintf("grid is %.0fpx tall, playfield is %.0fpx", h, cfg.Playfield.Height))
	}
	if lvl.Grid.Filled() == 0 {
		warnings = append(warnings, "level has no tiles")
		return warnings
	}

	hb := cfg.Player.Hitbox
	col := int((cfg.Player.SpawnX + hb.InsetX + hb.Width/2) / tile)
	// Rows that overlap the hitbox at spawn are behind the player, not below.
	below := int((cfg.Player.SpawnY + hb.InsetY + hb.Height) / tile)
	landing := false
	for r := max(below, 0); r < lvl.Grid.H; r++ {
		if col < lvl.Grid.W && lvl.Grid.At(col, r) != 0 {
			landing = true
			break
		}
	}
	if !landing {
		warnings = append(warnings, fmt.Sprintf("no tile below the spawn point (column %d)", col))
	}
	return warnings
}
