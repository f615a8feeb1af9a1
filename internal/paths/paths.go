// Package paths describes the fixed road geometry of the intersection:
// per-lane polylines, stop lines and the heading schedule vehicles follow.
//
// The table is plain data. Loading it from YAML lives in the config package;
// this package only answers geometric questions about it.
package paths

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-junction/internal/core"
)

// Lane is one of the four approach directions a vehicle spawns into.
type Lane string

const (
	North Lane = "north"
	South Lane = "south"
	East  Lane = "east"
	West  Lane = "west"
)

// AllLanes lists the lanes in a fixed order. Simulation code iterates lanes
// in this order so that runs are reproducible.
var AllLanes = []Lane{East, West, North, South}

// ParseLane converts a lane name to a Lane.
func ParseLane(s string) (Lane, error) {
	switch l := Lane(s); l {
	case North, South, East, West:
		return l, nil
	}
	return "", fmt.Errorf("paths: unknown lane %q", s)
}

// Opposite returns the lane on the other side of the intersection.
func (l Lane) Opposite() Lane {
	switch l {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return l
}

// Vertical reports whether the lane runs along the y axis.
func (l Lane) Vertical() bool {
	return l == North || l == South
}

func (l Lane) String() string { return string(l) }

// Axis is the coordinate a segment is measured along.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// Path is one way through the intersection for a lane.
type Path struct {
	Name     string      `yaml:"name"`
	Points   []core.Vec2 `yaml:"points"`
	Stop     core.Vec2   `yaml:"stop"`
	Rotation []float64   `yaml:"rotation,omitempty"` // degrees, one per segment
	Axis     []Axis      `yaml:"axis,omitempty"`     // one per segment
}

// Route groups the paths available to a lane together with the lane's
// heading on entry.
type Route struct {
	Paths    []Path  `yaml:"paths"`
	Rotation float64 `yaml:"rotation"`
	Axis     Axis    `yaml:"axis"`
}

// Table maps every lane to its route.
type Table struct {
	Lanes map[Lane]Route `yaml:"lanes"`
}

// LaneList returns the lanes present in the table, in AllLanes order.
func (t Table) LaneList() []Lane {
	out := make([]Lane, 0, len(AllLanes))
	for _, l := range AllLanes {
		if _, ok := t.Lanes[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

// Route returns the route for a lane.
func (t Table) Route(l Lane) (Route, bool) {
	r, ok := t.Lanes[l]
	return r, ok
}

// Normalize fills in missing per-segment schedules. The entry segment takes
// the route's heading and axis when the route declares an axis; otherwise,
// like later segments, it is derived from the geometry.
func (t *Table) Normalize() {
	for l, r := range t.Lanes {
		for i := range r.Paths {
			p := &r.Paths[i]
			segs := p.Segments()
			if segs == 0 {
				continue
			}
			if len(p.Axis) == 0 {
				axes := make([]Axis, segs)
				for s := range axes {
					axes[s] = p.AxisAt(s)
				}
				if r.Axis != "" {
					axes[0] = r.Axis
				}
				p.Axis = axes
			}
			if len(p.Rotation) == 0 {
				rot := make([]float64, segs)
				for s := range rot {
					rot[s] = p.RotationAt(s)
				}
				// A route's heading is only declared together with its
				// axis; a zero Rotation alone is a real heading (east).
				if r.Axis != "" {
					rot[0] = r.Rotation
				}
				p.Rotation = rot
			}
		}
		t.Lanes[l] = r
	}
}

// Validate checks the table for the shape the simulation relies on.
// All problems are reported together.
func (t Table) Validate() error {
	var errs []error
	for _, l := range AllLanes {
		r, ok := t.Lanes[l]
		if !ok {
			errs = append(errs, fmt.Errorf("paths: lane %s missing", l))
			continue
		}
		if len(r.Paths) == 0 {
			errs = append(errs, fmt.Errorf("paths: lane %s has no paths", l))
		}
		if r.Axis != "" && r.Axis != AxisX && r.Axis != AxisY {
			errs = append(errs, fmt.Errorf("paths: lane %s: bad axis %q", l, r.Axis))
		}
		for i, p := range r.Paths {
			if err := p.validate(); err != nil {
				errs = append(errs, fmt.Errorf("paths: lane %s path %d: %w", l, i, err))
			}
		}
	}
	for l := range t.Lanes {
		if _, err := ParseLane(string(l)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (p Path) validate() error {
	if len(p.Points) < 2 {
		return errors.New("needs at least 2 points")
	}
	segs := p.Segments()
	if len(p.Rotation) > 0 && len(p.Rotation) != segs {
		return fmt.Errorf("rotation schedule has %d entries, want %d", len(p.Rotation), segs)
	}
	if len(p.Axis) > 0 && len(p.Axis) != segs {
		return fmt.Errorf("axis schedule has %d entries, want %d", len(p.Axis), segs)
	}
	for i, a := range p.Axis {
		if a != AxisX && a != AxisY {
			return fmt.Errorf("segment %d: bad axis %q", i, a)
		}
	}
	for i := 0; i < segs; i++ {
		if p.Points[i] == p.Points[i+1] {
			return fmt.Errorf("segment %d has zero length", i)
		}
	}

	// The stop line must sit on the first segment, between origin and the
	// first waypoint, or vehicles would never meet it.
	axis := p.AxisAt(0)
	from, to := coord(p.Points[0], axis), coord(p.Points[1], axis)
	stop := p.StopCoord()
	if stop < math.Min(from, to) || stop > math.Max(from, to) {
		return fmt.Errorf("stop line %.0f not within first segment [%.0f, %.0f]", stop, from, to)
	}
	return nil
}

// Segments returns the number of segments in the path.
func (p Path) Segments() int {
	if len(p.Points) < 2 {
		return 0
	}
	return len(p.Points) - 1
}

// Origin returns the spawn point of the path.
func (p Path) Origin() core.Vec2 {
	if len(p.Points) == 0 {
		return core.Vec2{}
	}
	return p.Points[0]
}

// Segment returns the endpoints of segment i. ok is false past the last waypoint.
func (p Path) Segment(i int) (from, to core.Vec2, ok bool) {
	if i < 0 || i >= p.Segments() {
		return core.Vec2{}, core.Vec2{}, false
	}
	return p.Points[i], p.Points[i+1], true
}

// clampSegment maps any index onto an existing segment; positions past the
// end keep the heading of the final segment.
func (p Path) clampSegment(i int) int {
	if i < 0 {
		return 0
	}
	if n := p.Segments(); i >= n {
		return max(n-1, 0)
	}
	return i
}

// AxisAt returns the axis a vehicle on segment i is measured along.
// An explicit schedule wins; otherwise the dominant direction of the segment.
func (p Path) AxisAt(i int) Axis {
	i = p.clampSegment(i)
	if i < len(p.Axis) {
		return p.Axis[i]
	}
	d := p.delta(i)
	if math.Abs(d.Y) > math.Abs(d.X) {
		return AxisY
	}
	return AxisX
}

// RotationAt returns the heading in degrees for segment i
// (0 = +x, 90 = +y, screen coordinates).
func (p Path) RotationAt(i int) float64 {
	i = p.clampSegment(i)
	if i < len(p.Rotation) {
		return p.Rotation[i]
	}
	d := p.delta(i)
	return math.Atan2(d.Y, d.X) * 180 / math.Pi
}

// Heading returns the unit direction of travel on segment i.
func (p Path) Heading(i int) core.Vec2 {
	return p.delta(p.clampSegment(i)).Unit()
}

// TravelSign returns +1 or -1 for the direction of travel along AxisAt(i).
func (p Path) TravelSign(i int) float64 {
	d := p.delta(p.clampSegment(i))
	if coord(d, p.AxisAt(i)) < 0 {
		return -1
	}
	return 1
}

// StopCoord returns the stop line position along the first segment's axis.
func (p Path) StopCoord() float64 {
	return coord(p.Stop, p.AxisAt(0))
}

func (p Path) delta(i int) core.Vec2 {
	if p.Segments() == 0 {
		return core.Vec2{}
	}
	return p.Points[i+1].Sub(p.Points[i])
}

// Coord returns the component of v along axis a.
func Coord(v core.Vec2, a Axis) float64 {
	return coord(v, a)
}

func coord(v core.Vec2, a Axis) float64 {
	if a == AxisY {
		return v.Y
	}
	return v.X
}
