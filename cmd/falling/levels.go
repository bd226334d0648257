package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/falling-world/internal/level"
	"github.com/vovakirdan/falling-world/internal/platform/tui"
	"github.com/vovakirdan/falling-world/internal/registry"
)

const defaultLevelID = "falling"

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the built-in levels and, with --levels-dir, every valid level
file found under that directory.`,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	items, err := catalog()
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, it := range items {
		maxIDLen = max(maxIDLen, len(it.LevelID))
	}

	fmt.Printf("  %-*s  %5s  %s\n", maxIDLen, "ID", "Tiles", "Title")
	fmt.Printf("  %-*s  %5s  %s\n", maxIDLen, "--", "-----", "-----")
	for _, it := range items {
		fmt.Printf("  %-*s  %5d  %s\n", maxIDLen, it.LevelID, it.Tiles, it.Title)
	}

	fmt.Println()
	fmt.Println("Run 'falling play <id>' to play a level.")
	return nil
}

// catalog lists built-in levels followed by levels from --levels-dir.
// A file level with the same ID as a built-in one replaces it.
func catalog() ([]tui.MenuItem, error) {
	var items []tui.MenuItem
	index := make(map[string]int)

	for _, info := range registry.List() {
		index[info.ID] = len(items)
		items = append(items, tui.MenuItem{
			LevelID: info.ID,
			Title:   info.Title,
			Tiles:   info.Tiles,
			Source:  "builtin",
		})
	}

	if flagLevelsDir == "" {
		return items, nil
	}

	levels, err := dirLoader().LoadAll()
	if err != nil {
		return nil, err
	}
	for _, lvl := range levels {
		item := tui.MenuItem{
			LevelID: lvl.ID,
			Title:   lvl.Name,
			Tiles:   lvl.Grid.Filled(),
			Source:  lvl.FilePath,
		}
		if i, ok := index[lvl.ID]; ok {
			items[i] = item
			continue
		}
		index[lvl.ID] = len(items)
		items = append(items, item)
	}
	return items, nil
}

// resolveLevel finds a level by file path, --levels-dir ID or built-in ID,
// in that order.
func resolveLevel(ref string) (level.Level, error) {
	if ref == "" {
		ref = defaultLevelID
	}

	if level.IsSupported(ref) {
		if _, err := os.Stat(ref); err == nil {
			return level.LoadFile(ref)
		}
	}

	if flagLevelsDir != "" {
		if lvl, err := dirLoader().LoadByID(ref); err == nil {
			return lvl, nil
		}
	}

	if registry.Exists(ref) {
		return registry.Create(ref)
	}
	return level.Level{}, fmt.Errorf("unknown level %q", ref)
}

// dirLoader reads --levels-dir, warning about files it cannot load.
func dirLoader() *level.Loader {
	l := level.NewLoader(flagLevelsDir)
	l.OnSkip = func(path string, err error) {
		fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", path, err)
	}
	return l
}
