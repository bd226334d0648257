package registry

import (
	"testing"

	"github.com/vovakirdan/falling-world/internal/level"
)

func testLevel(id string) Factory {
	return func() level.Level {
		return level.Level{
			ID:   id,
			Name: "Test " + id,
			Grid: level.MustGrid(2, 1, []uint8{1, 1}),
		}
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-test-b", testLevel("zz-test-b"))
	Register("zz-test-a", testLevel("zz-test-a"))

	if !Exists("zz-test-a") {
		t.Fatal("registered level should exist")
	}

	lvl, err := Create("zz-test-a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if lvl.ID != "zz-test-a" || lvl.Grid.Filled() != 2 {
		t.Errorf("Create() = %+v", lvl)
	}

	var seen []string
	for _, info := range List() {
		if info.ID == "zz-test-a" || info.ID == "zz-test-b" {
			seen = append(seen, info.ID)
			if info.Tiles != 2 || info.Title != "Test "+info.ID {
				t.Errorf("unexpected info %+v", info)
			}
		}
	}
	if len(seen) != 2 || seen[0] != "zz-test-a" {
		t.Errorf("List() should be sorted by ID, got %v", seen)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("expected error for unknown level")
	}
	if Exists("does-not-exist") {
		t.Error("unknown level should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", testLevel("zz-dup"))
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", testLevel("zz-dup"))
}
