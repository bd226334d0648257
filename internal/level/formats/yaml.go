// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     YAMLSize          `yaml:"size"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Level is a parsed level file, independent of its source format.
// Rows are validated against Width and Height by the caller.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Rows     []string
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return finish(Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Width:    yl.Size.W,
		Height:   yl.Size.H,
		Rows:     yl.Rows,
		Metadata: yl.Metadata,
	})
}

// MarshalYAML encodes a level back into the YAML file layout.
func MarshalYAML(l Level) ([]byte, error) {
	return yaml.Marshal(YAMLLevel{
		ID:       l.ID,
		Name:     l.Name,
		Size:     YAMLSize{W: l.Width, H: l.Height},
		Rows:     l.Rows,
		Metadata: l.Metadata,
	})
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// finish fills derived defaults shared by every format.
func finish(l Level) (Level, error) {
	if l.ID == "" {
		return Level{}, fmt.Errorf("missing id")
	}
	if l.Name == "" {
		l.Name = l.ID
	}
	if l.Height == 0 {
		l.Height = len(l.Rows)
	}
	if l.Width == 0 && len(l.Rows) > 0 {
		l.Width = len(l.Rows[0])
	}
	if l.Height != len(l.Rows) {
		return Level{}, fmt.Errorf("size.h is %d but %d rows given", l.Height, len(l.Rows))
	}
	return l, nil
}
