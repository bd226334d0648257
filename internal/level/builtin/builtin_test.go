package builtin

import (
	"testing"

	"github.com/vovakirdan/falling-world/internal/registry"
)

func TestBuiltinLevelsRegistered(t *testing.T) {
	for _, id := range []string{DefaultID, "zigzag", "funnel"} {
		lvl, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if lvl.Grid.W != 18 || lvl.Grid.H != 13 {
			t.Errorf("%s: size %dx%d, expected 18x13", id, lvl.Grid.W, lvl.Grid.H)
		}
		if lvl.Grid.Filled() == 0 {
			t.Errorf("%s: no tiles", id)
		}
	}
}

func TestFallingLevelLayout(t *testing.T) {
	lvl, err := registry.Create(DefaultID)
	if err != nil {
		t.Fatal(err)
	}
	g := lvl.Grid

	if g.Filled() != 23 {
		t.Errorf("expected 23 tiles, got %d", g.Filled())
	}
	if g.At(17, 0) != 1 {
		t.Error("top-right corner should hold the first tile")
	}
	for c := 1; c <= 3; c++ {
		if g.At(c, 12) != 1 {
			t.Errorf("landing ledge missing at column %d", c)
		}
	}
}

func TestSpawnColumnIsClear(t *testing.T) {
	// The player spawns at (30,30) and must fall freely before landing.
	for _, info := range registry.List() {
		lvl, err := registry.Create(info.ID)
		if err != nil {
			t.Fatal(err)
		}
		for r := 0; r < 2; r++ {
			if lvl.Grid.At(1, r) != 0 {
				t.Errorf("%s: spawn cell (1,%d) is blocked", info.ID, r)
			}
		}
	}
}

func TestFactoriesReturnFreshGrids(t *testing.T) {
	a, _ := registry.Create(DefaultID)
	a.Grid.Cells[0] = 1
	b, _ := registry.Create(DefaultID)
	if b.Grid.Cells[0] != 0 {
		t.Error("mutating one level instance leaked into the next")
	}
}
