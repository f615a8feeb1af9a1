package core

import "strings"

// Action is a semantic game action, independent of the key that produced it.
type Action int

const (
	ActionNone        Action = iota
	ActionConfirm            // Enter, Space - start the game
	ActionBack               // B, Escape - go back to menu
	ActionRestart            // R - new run after game over
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause
	ActionToggleNorth        // N, Up - flip the north light
	ActionToggleSouth        // S, Down - flip the south light
	ActionToggleEast         // E, Right - flip the east light
	ActionToggleWest         // W, Left - flip the west light
	ActionToggleAll          // Tab, A - flip every light at once

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:        "None",
	ActionConfirm:     "Confirm",
	ActionBack:        "Back",
	ActionRestart:     "Restart",
	ActionQuit:        "Quit",
	ActionPause:       "Pause",
	ActionToggleNorth: "ToggleNorth",
	ActionToggleSouth: "ToggleSouth",
	ActionToggleEast:  "ToggleEast",
	ActionToggleWest:  "ToggleWest",
	ActionToggleAll:   "ToggleAll",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions triggered during one simulation tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame. ActionNone and unknown
// actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < actionCount {
		f.bits |= 1 << a
	}
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Actions lists the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// String lists the triggered actions, e.g. "ToggleNorth+Pause".
func (f InputFrame) String() string {
	actions := f.Actions()
	if len(actions) == 0 {
		return "None"
	}
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return strings.Join(names, "+")
}
