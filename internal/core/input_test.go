package core

import (
	"testing"
	"time"
)

func TestInputFramePressedImpliesHeld(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.Hold(ActionMoveRight)

	if !f.Has(ActionJump) || !f.IsHeld(ActionJump) {
		t.Error("pressed action should be both pressed and held")
	}
	if f.Has(ActionMoveRight) {
		t.Error("held-only action should not count as pressed")
	}
	if !f.IsHeld(ActionMoveRight) {
		t.Error("held action should be held")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionJump) || f.IsHeld(ActionMoveRight) {
		t.Error("Clear should drop all actions")
	}
	if !clone.Has(ActionJump) || !clone.IsHeld(ActionMoveRight) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) || f.IsHeld(ActionJump) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionRestart)
	if !f.Has(ActionRestart) {
		t.Error("Set on zero frame should work")
	}
}

func TestHoldTracker(t *testing.T) {
	start := time.Unix(1000, 0)
	tr := NewHoldTracker(200 * time.Millisecond)

	tr.Press(ActionMoveLeft, start)
	f := tr.Frame(start)
	if !f.Has(ActionMoveLeft) || !f.IsHeld(ActionMoveLeft) {
		t.Fatal("first event should be pressed and held")
	}

	// Auto-repeat inside the window keeps the key held but is not a new press.
	tr.Press(ActionMoveLeft, start.Add(100*time.Millisecond))
	f = tr.Frame(start.Add(150 * time.Millisecond))
	if f.Has(ActionMoveLeft) {
		t.Error("repeat inside the hold window should not be a new press")
	}
	if !f.IsHeld(ActionMoveLeft) {
		t.Error("key should still be held")
	}

	// No events for longer than the window: released.
	f = tr.Frame(start.Add(time.Second))
	if f.IsHeld(ActionMoveLeft) {
		t.Error("key should be released after the hold window")
	}

	// A fresh press after release fires again.
	tr.Press(ActionMoveLeft, start.Add(2*time.Second))
	f = tr.Frame(start.Add(2 * time.Second))
	if !f.Has(ActionMoveLeft) {
		t.Error("press after release should fire")
	}
}

func TestHoldTrackerIgnoresNone(t *testing.T) {
	now := time.Unix(0, 0)
	tr := NewHoldTracker(time.Second)
	tr.Press(ActionNone, now)
	f := tr.Frame(now)
	if f.Has(ActionNone) || f.IsHeld(ActionNone) {
		t.Error("ActionNone should never be tracked")
	}
	tr.Press(ActionJump, now)
	tr.Reset()
	if tr.Frame(now).Has(ActionJump) {
		t.Error("Reset should drop pending presses")
	}
}

func TestActionString(t *testing.T) {
	if ActionMoveLeft.String() != "MoveLeft" {
		t.Errorf("String() = %q, expected MoveLeft", ActionMoveLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("String() = %q, expected Unknown", Action(99).String())
	}
}
