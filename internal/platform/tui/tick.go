// Package tui provides the Bubble Tea front end for the junction game.
// It runs the tick loop, maps keys to actions, records finished runs and
// serves the same screens over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step of the model that scheduled it.
type TickMsg struct {
	Loop uint64 // Tick loop that produced the message
	At   time.Time
}

var loopSeq atomic.Uint64

// nextLoop returns an identifier for a new tick loop. A session that leaves
// a game and starts another keeps receiving ticks from the old loop until
// they drain, and the loop ID lets the new model ignore them.
func nextLoop() uint64 {
	return loopSeq.Add(1)
}

// tickCmd schedules the next tick for loop at tickRate ticks per second.
func tickCmd(loop uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, At: t}
	})
}
