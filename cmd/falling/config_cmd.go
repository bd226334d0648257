package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/falling-world/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way 'play' does, applies --difficulty,
and prints the result. Redirect the output to start a custom config file.

Examples:
  falling config > ~/.falling/configs/falling.yaml
  falling config --format toml --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Encode(cfg, flagFormat)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
