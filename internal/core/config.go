package core

import "slices"

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

// TickMillis returns the wall-clock length of one tick in milliseconds.
func (c RuntimeConfig) TickMillis() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60.0
	}
	return 1000.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Started  bool // Whether play has begun (false while the start screen is up)
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Event is a notable occurrence during a tick, reported to the platform for logging.
type Event struct {
	Kind   string         // Short machine-readable kind, e.g. "crash"
	Tick   uint64         // Tick on which the event happened
	Fields map[string]any // Structured payload
}

// KeyVals flattens the event fields into alternating key/value pairs,
// sorted by key so log lines are stable.
func (e Event) KeyVals() []any {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	kv := make([]any, 0, 2+len(keys)*2)
	kv = append(kv, "tick", e.Tick)
	for _, k := range keys {
		kv = append(kv, k, e.Fields[k])
	}
	return kv
}

