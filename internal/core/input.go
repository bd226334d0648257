package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // J, Left arrow - run left while held
	ActionMoveRight        // L, Right arrow - run right while held
	ActionJump             // Space - jump when grounded
	ActionRestart          // Enter - start or restart from the title/game over screen
	ActionExit             // Esc, Q, Ctrl+C - leave the game
	ActionPause            // P - debug pause toggle
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionExit:
		return "Exit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation frame.
// Pressed actions fired on this exact frame; held actions are still down.
// A pressed action is always held as well.
type InputFrame struct {
	Actions map[Action]bool // pressed this frame
	held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed (and held) for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.Hold(a)
}

// Hold marks an action as held without a fresh press.
func (f *InputFrame) Hold(a Action) {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	f.held[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// IsHeld returns true if the given action is currently held down.
func (f InputFrame) IsHeld(a Action) bool {
	if f.held == nil {
		return false
	}
	return f.held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.held {
		delete(f.held, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.held {
		clone.held[k] = v
	}
	return clone
}

// HoldTracker turns a stream of key-press events into pressed/held frames.
// Terminals report presses and auto-repeats but never releases, so an action
// counts as held until no event for it arrives within the hold window.
type HoldTracker struct {
	window   time.Duration
	lastSeen map[Action]time.Time
	pending  map[Action]bool
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window:   window,
		lastSeen: make(map[Action]time.Time),
		pending:  make(map[Action]bool),
	}
}

// Press records a key event for the action at the given time.
func (t *HoldTracker) Press(a Action, now time.Time) {
	if a == ActionNone {
		return
	}
	if !t.IsHeld(a, now) {
		t.pending[a] = true
	}
	t.lastSeen[a] = now
}

// IsHeld reports whether the action had an event within the hold window.
func (t *HoldTracker) IsHeld(a Action, now time.Time) bool {
	seen, ok := t.lastSeen[a]
	return ok && now.Sub(seen) <= t.window
}

// Frame builds the input frame for the current tick and consumes pending presses.
func (t *HoldTracker) Frame(now time.Time) InputFrame {
	frame := NewInputFrame()
	for a := range t.pending {
		frame.Set(a)
		delete(t.pending, a)
	}
	for a, seen := range t.lastSeen {
		if now.Sub(seen) <= t.window {
			frame.Hold(a)
		} else {
			delete(t.lastSeen, a)
		}
	}
	return frame
}

// Reset forgets all tracked keys.
func (t *HoldTracker) Reset() {
	clear(t.lastSeen)
	clear(t.pending)
}
