package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/falling-world/internal/core"
)

// GameKeyMap defines the key bindings while playing.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Exit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Restart, k.Exit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Restart, k.Pause, k.Screenshot, k.Exit},
	}
}

// DefaultGameKeyMap returns default key bindings.
// Pause is only listed in help when debug is on.
func DefaultGameKeyMap(debug bool) GameKeyMap {
	km := GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("j", "left"),
			key.WithHelp("j/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up"),
			key.WithHelp("space", "jump"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc", "exit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
	km.Pause.SetEnabled(debug)
	return km
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys GameKeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Exit):
		return core.ActionExit
	case key.Matches(msg, km.keys.Left):
		return core.ActionMoveLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionMoveRight
	case key.Matches(msg, km.keys.Jump):
		return core.ActionJump
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// IsScreenshot reports whether the key requests a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Screenshot)
}

// MenuKeyMap defines the key bindings for the level picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default menu key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(keys MenuKeyMap, msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, keys.Quit):
		return MenuActionQuit
	case key.Matches(msg, keys.Up):
		return MenuActionUp
	case key.Matches(msg, keys.Down):
		return MenuActionDown
	case key.Matches(msg, keys.Select):
		return MenuActionSelect
	}
	return MenuActionNone
}
