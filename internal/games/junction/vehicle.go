package junction

import (
	"github.com/vovakirdan/tui-junction/internal/core"
	"github.com/vovakirdan/tui-junction/internal/paths"
)

// Vehicle is a single car following one path through the junction.
// Position is the top-left corner of its box in world pixels.
type Vehicle struct {
	ID        string
	Lane      paths.Lane
	Path      paths.Path
	Pos       core.Vec2
	Segment   int     // Index of the segment currently being driven
	Rotation  float64 // Heading in degrees

	BaseSpeed    float64 // Cruise speed, px per tick
	CurrentSpeed float64
	TargetSpeed  float64
	AccelFactor  float64 // Fraction of the speed difference closed per tick
	DesiredGap   float64

	Stopped bool // Held at the stop line
	Crashed bool

	Color     core.Color
	SpawnedAt float64 // Game clock, ms
}

// Box returns the vehicle's collision box.
func (v *Vehicle) Box(w, h float64) core.Box {
	return core.BoxAt(v.Pos, w, h)
}

// AxisCoord returns the vehicle position along the axis of its current segment.
func (v *Vehicle) AxisCoord() float64 {
	return paths.Coord(v.Pos, v.Path.AxisAt(v.Segment))
}

// Turned reports whether the vehicle has left its entry segment.
func (v *Vehicle) Turned() bool {
	return v.Segment > 0
}
