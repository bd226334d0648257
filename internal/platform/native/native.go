// Package native drives the falling world directly on a tcell screen.
// Unlike the Bubble Tea frontend it owns its loop: a ticker paces frames
// while a goroutine feeds terminal events into a channel.
package native

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/falling-world/internal/core"
)

// Options configures the tcell frontend.
type Options struct {
	Debug      bool
	HoldWindow time.Duration
	Background core.Color
	Text       core.Color
	Logger     *log.Logger
}

// Runner pumps frames from a simulation to a tcell screen.
type Runner struct {
	screen   tcell.Screen
	sim      core.Simulation
	opts     Options
	buf      *core.Screen
	hold     *core.HoldTracker
	rate     int
	lastTick time.Time
	state    core.GameState
	styles   map[core.Color]tcell.Style
	now      func() time.Time
}

// NewRunner wraps an initialised screen. The runner does not own the screen
// until Run is called.
func NewRunner(screen tcell.Screen, sim core.Simulation, cfg core.RuntimeConfig, opts Options) *Runner {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = 200 * time.Millisecond
	}
	if opts.Background == core.ColorDefault && opts.Text == core.ColorDefault {
		opts.Background = core.ColorSky
		opts.Text = core.ColorBlack
	}
	rate := cfg.TickRate
	if rate <= 0 {
		rate = 60
	}

	w, h := screen.Size()
	return &Runner{
		screen: screen,
		sim:    sim,
		opts:   opts,
		buf:    core.NewScreen(w, h),
		hold:   core.NewHoldTracker(opts.HoldWindow),
		rate:   rate,
		state:  sim.State(),
		styles: make(map[core.Color]tcell.Style),
		now:    time.Now,
	}
}

// HandleEvent applies one terminal event. It returns false when the
// terminal asked to stop outright.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		r.hold.Press(MapKey(ev, r.opts.Debug), r.now())

	case *tcell.EventResize:
		w, h := r.screen.Size()
		r.buf.Resize(w, h)
		r.screen.Sync()
	}
	return true
}

// Frame steps the simulation once and paints the result.
func (r *Runner) Frame(now time.Time) core.StepResult {
	dt := 1.0 / float64(r.rate)
	if !r.lastTick.IsZero() {
		dt = now.Sub(r.lastTick).Seconds()
	}
	r.lastTick = now

	result := r.sim.Step(r.hold.Frame(now), dt)
	if result.State.GameOver && !r.state.GameOver {
		r.opts.Logger.Info("game over", "level", result.State.Score)
	}
	r.state = result.State

	r.Draw()
	return result
}

// Draw renders the simulation into the buffer and copies it to the screen.
func (r *Runner) Draw() {
	r.sim.Render(r.buf)
	for y := range r.buf.Height() {
		for x := range r.buf.Width() {
			cell := r.buf.GetCell(x, y)
			r.screen.SetContent(x, y, cell.Rune, nil, r.style(cell.Color))
		}
	}
	r.screen.Show()
}

func (r *Runner) style(c core.Color) tcell.Style {
	if st, ok := r.styles[c]; ok {
		return st
	}
	fg := c
	if fg == core.ColorDefault {
		fg = r.opts.Text
	}
	st := tcell.StyleDefault.Background(Color(r.opts.Background)).Foreground(Color(fg))
	r.styles[c] = st
	return st
}

// State returns the last state reported by the simulation.
func (r *Runner) State() core.GameState {
	return r.state
}

// Loop runs frames until the simulation exits, the terminal is interrupted
// or ctx is cancelled.
func (r *Runner) Loop(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(r.rate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go r.pollEvents(events, done)

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-events:
			if !r.HandleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			if r.Frame(now).Exit {
				return
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func (r *Runner) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Run opens the terminal, plays until exit and restores the terminal.
func Run(ctx context.Context, sim core.Simulation, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return sim.State(), fmt.Errorf("native: %w", err)
	}
	if err := screen.Init(); err != nil {
		return sim.State(), fmt.Errorf("native: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	r := NewRunner(screen, sim, cfg, opts)
	r.opts.Logger.Info("frontend started", "frontend", "tcell", "fps", r.rate)
	r.Loop(ctx)
	r.opts.Logger.Info("frontend stopped", "level", r.state.Score)
	return r.state, nil
}
