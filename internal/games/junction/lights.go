package junction

import "github.com/vovakirdan/tui-junction/internal/paths"

// Signal is the state of one traffic light.
type Signal int

const (
	Red Signal = iota
	Green
)

func (s Signal) String() string {
	if s == Green {
		return "green"
	}
	return "red"
}

// Lights holds the four traffic lights. Lights are named by the side of the
// intersection they stand on.
type Lights struct {
	state map[paths.Lane]Signal
}

// NewLights returns lights in their opening state: north/south red,
// east/west green.
func NewLights() *Lights {
	return &Lights{state: map[paths.Lane]Signal{
		paths.North: Red,
		paths.South: Red,
		paths.East:  Green,
		paths.West:  Green,
	}}
}

// State returns the signal of the named light.
func (l *Lights) State(light paths.Lane) Signal {
	return l.state[light]
}

// Set forces a light to the given signal.
func (l *Lights) Set(light paths.Lane, s Signal) {
	l.state[light] = s
}

// Toggle flips a light between red and green.
func (l *Lights) Toggle(light paths.Lane) Signal {
	if l.state[light] == Red {
		l.state[light] = Green
	} else {
		l.state[light] = Red
	}
	return l.state[light]
}

// ToggleAll flips every light.
func (l *Lights) ToggleAll() {
	for _, lane := range paths.AllLanes {
		l.Toggle(lane)
	}
}

// Cycle flips every light once per period ticks. Starting from the opening
// state this alternates right of way between the two axes.
func (l *Lights) Cycle(tick uint64, period int) bool {
	if period <= 0 || tick == 0 || tick%uint64(period) != 0 {
		return false
	}
	l.ToggleAll()
	return true
}

// ObservedLight returns which light a lane's vehicles obey. North/south
// traffic watches the signal on the far side of the junction.
func ObservedLight(lane paths.Lane) paths.Lane {
	if lane.Vertical() {
		return lane.Opposite()
	}
	return lane
}

// Observed returns the signal a lane's vehicles obey.
func (l *Lights) Observed(lane paths.Lane) Signal {
	return l.state[ObservedLight(lane)]
}
