package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle   Phase = iota // waiting for the first impulse, nothing moves
	PhaseActive              // simulation running
	PhaseOver                // collision happened, waiting for restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int   // Current score
	HighScore int   // Best score known to this process
	Phase     Phase // Session lifecycle state
	GameOver  bool  // Whether the game has ended (Phase == PhaseOver)
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the cues raised during the tick, in order.
type StepResult struct {
	State GameState
	Cues  []Cue
}
