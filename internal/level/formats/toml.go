package formats

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

// TOMLLevel represents the TOML structure for a level file.
// Top-level keys must precede the [size] and [metadata] tables.
type TOMLLevel struct {
	ID       string            `toml:"id"`
	Name     string            `toml:"name"`
	Rows     []string          `toml:"rows"`
	Size     TOMLSize          `toml:"size"`
	Metadata map[string]string `toml:"metadata,omitempty"`
}

// TOMLSize represents grid dimensions.
type TOMLSize struct {
	W int `toml:"w"`
	H int `toml:"h"`
}

// ParseTOML parses a TOML level file.
func ParseTOML(data []byte) (Level, error) {
	var tl TOMLLevel
	md, err := toml.Decode(string(data), &tl)
	if err != nil {
		return Level{}, fmt.Errorf("toml decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Level{}, fmt.Errorf("toml: unknown key %q", undecoded[0].String())
	}
	return finish(Level{
		ID:       tl.ID,
		Name:     tl.Name,
		Width:    tl.Size.W,
		Height:   tl.Size.H,
		Rows:     tl.Rows,
		Metadata: tl.Metadata,
	})
}

// MarshalTOML encodes a level back into the TOML file layout.
func MarshalTOML(l Level) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	err := enc.Encode(TOMLLevel{
		ID:       l.ID,
		Name:     l.Name,
		Rows:     l.Rows,
		Size:     TOMLSize{W: l.Width, H: l.Height},
		Metadata: l.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("toml encode: %w", err)
	}
	return buf.Bytes(), nil
}
