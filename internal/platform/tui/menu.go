package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/falling-world/internal/core"
)

// MenuItem is one playable level in the picker.
type MenuItem struct {
	LevelID string
	Title   string
	Tiles   int
	Source  string // "builtin" or the file it was loaded from
}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(core.ColorYellow.ANSI())).
			Padding(0, 2)
	menuCursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(core.ColorSky.ANSI()))
	menuDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(core.ColorGray.ANSI()))
)

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items  []MenuItem
	cursor int
	config core.RuntimeConfig
	keys   MenuKeyMap
	help   help.Model

	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a picker over items.
func NewMenuModel(items []MenuItem, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:  items,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd { return nil }

// Update moves the cursor and ends the program on select or quit.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch MapKeyToMenuAction(m.keys, msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = min(m.cursor+1, max(len(m.items)-1, 0))
		case MenuActionSelect:
			if len(m.items) == 0 {
				break
			}
			item := m.items[m.cursor]
			m.selected = &item
			return m, tea.Quit
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionNone:
		}
	}
	return m, nil
}

// View lists the levels under the title, one per line.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		"",
		menuTitleStyle.Render("F A L L I N G   W O R L D"),
		"",
		"Select a level",
		"",
	}
	if len(m.items) == 0 {
		lines = append(lines, menuDimStyle.Render("no levels found"))
	}
	for i, item := range m.items {
		marker := "  "
		if i == m.cursor {
			marker = menuCursorStyle.Render("> ")
		}
		info := menuDimStyle.Render(fmt.Sprintf("%3d tiles  %s", item.Tiles, item.Source))
		lines = append(lines, fmt.Sprintf("%s%-16s %s", marker, item.Title, info))
	}
	lines = append(lines, "", m.help.View(m.keys))

	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, line)
	}
	return strings.Join(lines, "\n") + "\n"
}

// Selected returns the chosen item, or nil before a selection.
func (m MenuModel) Selected() *MenuItem { return m.selected }

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig { return m.config }

// MenuResult is what the picker ended with.
type MenuResult struct {
	LevelID string
	Config  core.RuntimeConfig
	Quit    bool
}

// RunMenu shows the picker on the alternate screen until the user picks a
// level or quits.
func RunMenu(items []MenuItem, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(items, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, fmt.Errorf("menu: %w", err)
	}

	m, ok := final.(MenuModel)
	if !ok || m.selected == nil {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return MenuResult{LevelID: m.selected.LevelID, Config: m.config}, nil
}
