package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const fallingFile = "falling.yaml"

// LoadFalling loads the game configuration.
// Search order: customPath -> ~/.falling/configs/falling.yaml -> ./configs/falling.yaml -> embedded default
// Files ending in .toml are decoded as TOML, anything else as YAML. Keys a
// file leaves out keep their default values.
func LoadFalling(customPath string) (FallingConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fallingFile); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", fallingFile)); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultFallingConfig()
	if err := yaml.Unmarshal(defaultFallingYAML, &cfg); err != nil {
		return DefaultFallingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Decode parses config data over the defaults. format is "toml" or "yaml".
func Decode(data []byte, format string) (FallingConfig, error) {
	cfg := DefaultFallingConfig()
	switch format {
	case "toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("toml decode: %w", err)
		}
	case "yaml", "yml", "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q", format)
	}
	return cfg, nil
}

// Encode writes the config in the given format ("toml" or "yaml").
func Encode(cfg FallingConfig, format string) ([]byte, error) {
	switch format {
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("toml encode: %w", err)
		}
		return buf.Bytes(), nil
	case "yaml", "yml", "":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("yaml marshal: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
}

// loadFile reads a config file, picking the decoder by extension.
func loadFile(path string) (FallingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultFallingConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Decode(data, formatOf(path))
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func formatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return "toml"
	}
	return "yaml"
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".falling", "configs", filename)
}

// ApplyFallingPreset modifies the config based on a difficulty preset.
func ApplyFallingPreset(cfg *FallingConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust tuning based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Scroll.Acceleration = 6
		cfg.Difficulty.Progression.MaxAt = 80
	case DifficultyHard:
		cfg.Scroll.Acceleration = 14
		cfg.Difficulty.Progression.MaxAt = 30
	}
}
