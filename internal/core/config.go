package core

import "time"

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

// TickInterval returns the nominal duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives (0 for games without lives)
	Level    int  // Current level, 1-based
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused

	// Session increases on every Reset. The platform uses it to tell one
	// game-over event from the next.
	Session uint64

	// Stats holds per-session counters worth persisting with the score.
	Stats map[string]int
}

// TimerRequest asks the platform to call back after a wall-clock delay.
// The token is opaque to the platform and is handed back unchanged.
type TimerRequest struct {
	Token uint64
	After time.Duration
}

// TimerHandler is implemented by games that issue TimerRequests.
type TimerHandler interface {
	HandleTimer(token uint64)
}

// GameEvent is a notable occurrence during a tick, for logging and
// notices. Name is game-defined.
type GameEvent struct {
	Name  string
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []GameEvent
	Timers []TimerRequest
}
