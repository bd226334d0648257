package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tile := NewRect(0, 32, 32, 32)

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"hitbox inside tile", NewRect(8, 40, 16, 16), true},
		{"sub-pixel overlap from above", NewRect(8, 8.5, 16, 24), true},
		{"resting on top edge", NewRect(8, 8, 16, 24), false},
		{"touching right edge", NewRect(32, 40, 16, 16), false},
		{"touching left edge", NewRect(-16, 40, 16, 16), false},
		{"below tile", NewRect(8, 64, 16, 24), false},
		{"covers tile", NewRect(-10, 20, 60, 60), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Intersects(tile); got != tt.want {
				t.Errorf("Intersects() = %v, expected %v", got, tt.want)
			}
			if got := tile.Intersects(tt.r); got != tt.want {
				t.Errorf("Intersects() is not symmetric for %+v", tt.r)
			}
		})
	}
}

func TestRectEdgesAndOffset(t *testing.T) {
	r := NewRect(30, 30, 32, 32)
	if r.Right() != 62 || r.Bottom() != 62 {
		t.Errorf("edges = (%v, %v), expected (62, 62)", r.Right(), r.Bottom())
	}

	moved := r.Offset(-5, 2.5)
	if moved.X != 25 || moved.Y != 32.5 || moved.W != 32 || moved.H != 32 {
		t.Errorf("Offset = %+v", moved)
	}
	if r.X != 30 {
		t.Error("Offset must not modify the receiver")
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0.25, 0, 0.1, 0.1},
		{568, 0, 568, 568},
	}
	for _, tt := range tests {
		if got := ClampF(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
