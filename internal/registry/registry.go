// Package registry indexes the levels compiled into the binary.
// Level packages register factories from init(), so the CLI and the menu
// can list them without importing each one by name.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/falling-world/internal/level"
)

// LevelInfo describes a registered level for listings.
type LevelInfo struct {
	ID    string
	Title string
	Tiles int
}

// Factory returns a fresh level. Callers may mutate what it returns.
type Factory func() level.Level

type entry struct {
	make Factory
	info LevelInfo
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a level under id. Registering the same id twice panics.
func Register(id string, f Factory) {
	sample := f()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: level %q already registered", id))
	}
	entries[id] = entry{
		make: f,
		info: LevelInfo{ID: id, Title: sample.Name, Tiles: sample.Grid.Filled()},
	}
}

// List returns every registered level, sorted by ID.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]LevelInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b LevelInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create builds the level registered under id.
func Create(id string) (level.Level, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return level.Level{}, fmt.Errorf("registry: unknown level %q", id)
	}
	return e.make(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
