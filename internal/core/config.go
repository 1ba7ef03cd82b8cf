package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size the play area and for deterministic simulation.
type RuntimeConfig struct {
	Width    float64 // Play area width in world units
	Height   float64 // Play area height in world units
	TickRate int     // Frames per second requested from the host
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults
// (an 80x23 terminal play area).
func DefaultConfig() RuntimeConfig {
	w, h := CellsToUnits(80, 23)
	return RuntimeConfig{
		Width:    w,
		Height:   h,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Meter is one HUD readout, e.g. "Fuel" / "83%".
type Meter struct {
	Label string
	Value string
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	Lives    int     // Remaining lives
	GameOver bool    // Whether the run has ended (reset pending)
	Paused   bool    // Whether the game is paused
	Elapsed  float64 // Seconds of play in the current run
	Meters   []Meter // Game-specific HUD readouts
}

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventGameOver    EventKind = iota + 1 // Run ended; Score holds the final score
	EventReset                            // State restored to initial counters
	EventWaveCleared                      // Invaders fleet destroyed
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventGameOver:
		return "game_over"
	case EventReset:
		return "reset"
	case EventWaveCleared:
		return "wave_cleared"
	default:
		return "unknown"
	}
}

// Event is emitted by Step for the platform (logging, run history).
type Event struct {
	Kind    EventKind
	Score   int
	Elapsed float64
	Wave    int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
