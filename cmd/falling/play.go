package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/falling-world/internal/config"
	"github.com/vovakirdan/falling-world/internal/core"
	"github.com/vovakirdan/falling-world/internal/game"
	"github.com/vovakirdan/falling-world/internal/level"
	"github.com/vovakirdan/falling-world/internal/platform/native"
	"github.com/vovakirdan/falling-world/internal/platform/tui"
)

var flagFrontend string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing a level. The argument is a built-in level ID, an ID
from --levels-dir, or the path to a .yaml/.yml/.toml level file.

Controls:
  J/Left      - Move left
  L/Right     - Move right
  Space/Up    - Jump
  Enter       - Start / restart
  P           - Pause (with --debug)
  Esc/Q       - Quit

Frontends:
  tea    - Bubble Tea renderer with a help footer (default)
  tcell  - Direct tcell renderer

Examples:
  falling play
  falling play funnel --difficulty easy
  falling play ./levels/steps.toml --frontend tcell`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tea", "Renderer: tea or tcell")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ref := ""
	if len(args) > 0 {
		ref = args[0]
	}

	lvl, err := resolveLevel(ref)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Run 'falling levels' to see available levels.")
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

	state, err := play(cmd.Context(), lvl, cfg, runtimeConfig(), logger)
	if err != nil {
		return err
	}

	if state.GameOver || state.Score > 0 {
		fmt.Println(game.LevelStatus(state.Score))
	}
	return nil
}

// play runs one session of a level on the selected frontend.
func play(ctx context.Context, lvl level.Level, cfg config.FallingConfig, rt core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	sim := game.NewContext(cfg, lvl,
		game.WithLogger(logger),
		game.WithDebug(flagDebug),
	)
	hold := time.Duration(cfg.Controls.HoldMS) * time.Millisecond

	logger.Info("playing", "level", lvl.ID, "frontend", flagFrontend, "difficulty", cfg.Difficulty.Enabled)

	switch flagFrontend {
	case "tea", "":
		return tui.Run(sim, rt, tui.Options{
			Name:       lvl.ID,
			Debug:      flagDebug,
			HoldWindow: hold,
			Logger:     logger,
		})

	case "tcell":
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
		return native.Run(ctx, sim, rt, native.Options{
			Debug:      flagDebug,
			HoldWindow: hold,
			Logger:     logger,
		})

	default:
		return sim.State(), fmt.Errorf("unknown frontend %q (tea, tcell)", flagFrontend)
	}
}
