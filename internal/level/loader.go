package level

import (
	"cmp"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vovakirdan/falling-world/internal/level/formats"
)

// Level is a tile grid plus the identity it was registered or loaded under.
type Level struct {
	ID       string
	Name     string
	Grid     Grid
	Metadata map[string]string
	FilePath string // empty for built-in levels
}

// Loader reads level files from a directory tree.
type Loader struct {
	Root string

	// OnSkip, when set, is told about files that look like levels but fail
	// to load. LoadAll skips them either way.
	OnSkip func(path string, err error)
}

// NewLoader creates a loader rooted at root.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll loads every level file under Root, sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	walk := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsSupported(path) {
			return nil
		}
		lvl, err := LoadFile(path)
		if err != nil {
			if l.OnSkip != nil {
				l.OnSkip(path, err)
			}
			return nil
		}
		levels = append(levels, lvl)
		return nil
	}
	if err := filepath.WalkDir(l.Root, walk); err != nil {
		return nil, fmt.Errorf("level: scanning %s: %w", l.Root, err)
	}

	slices.SortFunc(levels, func(a, b Level) int { return cmp.Compare(a.ID, b.ID) })
	return levels, nil
}

// LoadByID loads the level with the given ID from Root.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	i := slices.IndexFunc(levels, func(lvl Level) bool { return lvl.ID == id })
	if i < 0 {
		return Level{}, fmt.Errorf("level: %q not found in %s", id, l.Root)
	}
	return levels[i], nil
}

// LoadFile reads one level file. The format follows the file extension and
// a declared size must match the rows.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("level: %w", err)
	}

	var parsed formats.Level
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parsed, err = formats.ParseYAML(data)
	case ".toml":
		parsed, err = formats.ParseTOML(data)
	default:
		err = fmt.Errorf("unsupported extension %q", ext)
	}
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", path, err)
	}

	grid, err := ParseRows(parsed.Rows)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", path, err)
	}
	if grid.W != parsed.Width || grid.H != parsed.Height {
		return Level{}, fmt.Errorf("level %s: declared %dx%d, rows are %dx%d",
			path, parsed.Width, parsed.Height, grid.W, grid.H)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Grid:     grid,
		Metadata: parsed.Metadata,
		FilePath: path,
	}, nil
}

// IsSupported reports whether path has a level file extension.
func IsSupported(path string) bool {
	return slices.Contains(formats.FormatExtensions(), strings.ToLower(filepath.Ext(path)))
}
