package junction

import "github.com/vovakirdan/tui-junction/internal/core"

// vehicleColors is the paint palette new vehicles pick from.
var vehicleColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightBlue,
	core.ColorBrightGreen,
	core.ColorYellow,
	core.ColorPurple,
	core.ColorTeal,
	core.ColorOrange,
	core.ColorSlate,
}

// Visual characters for rendering
const (
	RoadChar        = '░'
	JunctionChar    = '▒'
	VehicleChar     = '█'
	VehicleFadeChar = '▓'
	VehicleDimChar  = '░'
	StopLineChar    = '┃'
	StopLineCharH   = '━'
	LaneMarkH       = '╌'
	LaneMarkV       = '╎'
	LightChar       = '●'
	ArrowRight      = '▶'
	ArrowLeft       = '◀'
	ArrowUp         = '▲'
	ArrowDown       = '▼'
)
