package core

// RuntimeConfig contains configuration passed to the platform at startup.
// Screen dimensions are terminal cells; the simulation itself works in
// playfield pixels and never looks at them.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Target frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Simulation.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Level counter (tiles scrolled past)
	Running  bool // Whether the simulation is in its running phase
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Simulation.Step() after each frame.
type StepResult struct {
	State GameState
	Exit  bool // The exit action was pressed this frame
}

// Simulation is what a platform adapter drives once per frame.
// Adapters own timing and input polling; the simulation owns everything else.
type Simulation interface {
	// Step advances the simulation by one frame of dt seconds.
	Step(in InputFrame, dt float64) StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
