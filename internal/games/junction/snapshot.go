package junction

import "github.com/vovakirdan/tui-junction/internal/paths"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateReady     GameStateType = "ready"
	StatePlaying   GameStateType = "playing"
	StatePaused    GameStateType = "paused"
	StateMilestone GameStateType = "milestone"
	StateGameOver  GameStateType = "game_over"
)

// Snapshot captures the game state for determinism testing and run reports.
// Per-lane arrays follow paths.AllLanes order.
type Snapshot struct {
	Tick       uint64
	Mode       string
	Score      int
	Streak     int
	BestStreak int
	Exits      int
	Crashes    int
	Vehicles   int
	LaneCounts [4]int
	Lights     [4]Signal
	Crash      CrashPhase
	State      GameStateType
	Odometer   float64 // Sum of vehicle coordinates, cheap fingerprint of positions
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case !g.started:
		state = StateReady
	case g.paused:
		state = StatePaused
	case g.Now() < g.holdUntil:
		state = StateMilestone
	}

	s := Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Score:      g.score.Score(),
		Streak:     g.score.Streak(),
		BestStreak: g.score.BestStreak(),
		Exits:      g.score.Exits(),
		Crashes:    g.score.Crashes(),
		Vehicles:   g.traffic.Count(),
		Crash:      g.crash.Phase(),
		State:      state,
	}
	for i, lane := range paths.AllLanes {
		s.LaneCounts[i] = len(g.traffic.Lane(lane))
		s.Lights[i] = g.lights.State(lane)
	}
	for _, v := range g.traffic.Vehicles() {
		s.Odometer += v.Pos.X + v.Pos.Y
	}
	return s
}
