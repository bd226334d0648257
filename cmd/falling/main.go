// falling is a terminal platformer: ride the falling tiles as long as you can.
//
// Usage:
//
//	falling play [level]     - Play a level (default: falling)
//	falling menu             - Pick levels interactively
//	falling levels           - List built-in and on-disk levels
//	falling check <file>...  - Validate level files
//	falling config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--config <path>      - Config file (YAML or TOML)
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--levels-dir <path>  - Directory with extra level files
//	--debug              - Enable the pause key and debug logging
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/falling-world/internal/config"
	"github.com/vovakirdan/falling-world/internal/core"

	// Register built-in levels
	_ "github.com/vovakirdan/falling-world/internal/level/builtin"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagDebug      bool
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "falling",
	Short: "Falling World - a terminal platformer",
	Long: `Falling World drops you onto a staircase of tiles that slowly start
to fall. Jump from tile to tile and stay on the playfield as long as you can.
Every row of tiles that leaves the bottom raises your level.

Available commands:
  play     - Play a level directly
  menu     - Interactive level picker
  levels   - Show all known levels
  check    - Validate level files
  config   - Print the effective configuration

Examples:
  falling play
  falling play zigzag --difficulty hard
  falling play ./levels/steps.yaml --frontend tcell
  falling menu --levels-dir ./levels`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory with extra level files")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable the pause key and debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. The terminal belongs to the game, so
// without --log-file everything is discarded. The returned closer is never nil.
func newLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "falling",
		Level:           level,
	})
	return logger, f, nil
}

// loadConfig reads the game config and applies the difficulty preset.
func loadConfig() (config.FallingConfig, error) {
	cfg, err := config.LoadFalling(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyFallingPreset(&cfg, preset)
	}
	return cfg, nil
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}
