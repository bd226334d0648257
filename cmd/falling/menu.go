package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/falling-world/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a level picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a level.
After a run ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select level
  Q            - Quit

Examples:
  falling menu
  falling menu --levels-dir ./levels
  falling menu --fps 30 --frontend tcell`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagFrontend, "frontend", "tea", "Renderer: tea or tcell")
}

func runMenu(cmd *cobra.Command, _ []string) error {
	items, err := catalog()
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	rt := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(items, rt)
		if err != nil {
			return err
		}

		// Update config with any size changes
		rt = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		lvl, err := resolveLevel(menuResult.LevelID)
		if err != nil {
			logger.Error("level unavailable", "level", menuResult.LevelID, "err", err)
			continue
		}

		state, err := play(cmd.Context(), lvl, cfg, rt, logger)
		if err != nil {
			return err
		}
		logger.Info("run finished", "level", lvl.ID, "reached", state.Score)
	}
}
