package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/falling-world/internal/core"
)

// Options configures the Bubble Tea frontend.
type Options struct {
	Name       string        // Used in screenshot file names
	Debug      bool          // Enables the pause key
	HoldWindow time.Duration // How long a key stays held after its last event
	Theme      Theme
	Logger     *log.Logger
}

// Model is the Bubble Tea model for running the simulation.
type Model struct {
	sim      core.Simulation
	opts     Options
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     *KeyMapper
	help     help.Model
	hold     *core.HoldTracker
	lastTick time.Time
	state    core.GameState
	now      func() time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given simulation.
func NewModel(sim core.Simulation, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = 200 * time.Millisecond
	}
	if opts.Theme == (Theme{}) {
		opts.Theme = DefaultTheme()
	}

	return Model{
		sim:    sim,
		opts:   opts,
		screen: core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config: cfg,
		keys:   NewKeyMapper(DefaultGameKeyMap(opts.Debug)),
		help:   help.New(),
		hold:   core.NewHoldTracker(opts.HoldWindow),
		state:  sim.State(),
		now:    time.Now,
	}
}

// playHeight leaves one row for the help footer.
func playHeight(h int) int {
	return max(h-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records key events; they are applied on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	if action := m.keys.MapKey(msg); action != core.ActionNone {
		m.hold.Press(action, m.now())
	}
	return m, nil
}

// handleResize processes window resize events.
// The simulation works in playfield pixels, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(max(m.config.TickRate, 1))
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	result := m.sim.Step(m.hold.Frame(now), dt)
	prev := m.state
	m.state = result.State

	if m.state.GameOver && !prev.GameOver {
		m.opts.Logger.Info("game over", "level", m.state.Score)
	}
	if result.Exit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.sim.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".falling", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Error("screenshot failed", "err", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	name := m.opts.Name
	if name == "" {
		name = "falling"
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", name, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Error("screenshot failed", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sim.Render(m.screen)
	return RenderScreen(m.screen, m.opts.Theme) + "\n" + m.help.View(m.keys.Keys())
}

// State returns the last state reported by the simulation.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program and returns the final game state.
func Run(sim core.Simulation, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	model := NewModel(sim, cfg, opts)
	model.opts.Logger.Info("frontend started", "frontend", "tea", "fps", cfg.TickRate)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return sim.State(), fmt.Errorf("tui: %w", err)
	}

	state := sim.State()
	if m, ok := finalModel.(Model); ok {
		state = m.State()
	}
	model.opts.Logger.Info("frontend stopped", "level", state.Score)
	return state, nil
}
