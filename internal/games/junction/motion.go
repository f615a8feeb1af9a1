package junction

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-junction/internal/paths"
)

// Advance moves every vehicle by one tick and returns the vehicles that left
// the world. Exited vehicles are already removed when Advance returns.
func (t *Traffic) Advance(lights *Lights) []*Vehicle {
	var exited []*Vehicle

	for _, lane := range paths.AllLanes {
		cars := t.lanes[lane]
		sortLane(lane, cars)

		var front *Vehicle
		for _, v := range cars {
			t.updateVehicle(v, front, lights)
			if t.outOfBounds(v) {
				exited = append(exited, v)
			}
			front = v
		}
	}

	// Removal waits until every lane has moved so this tick's ordering holds
	t.Remove(exited...)
	return exited
}

// updateVehicle applies following, stop-line prediction, acceleration and
// movement to one vehicle.
func (t *Traffic) updateVehicle(v, front *Vehicle, lights *Lights) {
	v.TargetSpeed = v.BaseSpeed

	if front != nil {
		v.TargetSpeed = t.followSpeed(v, front)
	}

	if v.Segment == 0 && t.shouldStop(v, lights, v.BaseSpeed) {
		v.Stopped = true
		v.TargetSpeed = 0
		v.snapToStopLine()
	} else {
		v.Stopped = false
	}

	v.CurrentSpeed += (v.TargetSpeed - v.CurrentSpeed) * v.AccelFactor

	if !v.Stopped {
		v.move(v.CurrentSpeed)
	}
}

// followSpeed damps a vehicle's target speed by its distance to the vehicle ahead.
func (t *Traffic) followSpeed(v, front *Vehicle) float64 {
	target := v.TargetSpeed
	d := v.Pos.Dist(front.Pos)

	gap := v.DesiredGap
	if v.Turned() || front.Turned() {
		gap *= t.cfg.Following.TurnGapFactor
	}

	for _, band := range t.cfg.Following.Bands {
		if d < gap*band.Below {
			return math.Min(target, front.CurrentSpeed*band.Factor)
		}
	}
	return target
}

// shouldStop reports whether a vehicle on its entry segment must hold at the
// stop line. predicted is the distance it would cover this tick.
func (t *Traffic) shouldStop(v *Vehicle, lights *Lights, predicted float64) bool {
	if lights.Observed(v.Lane) != Red {
		return false
	}

	axis := v.Path.AxisAt(0)
	pos := paths.Coord(v.Pos, axis)
	stop := v.Path.StopCoord()

	if v.Path.TravelSign(0) > 0 {
		if pos < stop && pos+predicted >= stop {
			return true
		}
	} else if pos > stop && pos-predicted <= stop {
		return true
	}

	return v.Stopped && math.Abs(pos-stop) < t.cfg.Vehicle.StopSnap
}

// snapToStopLine moves the vehicle onto the stop line along its entry axis.
func (v *Vehicle) snapToStopLine() {
	stop := v.Path.StopCoord()
	if v.Path.AxisAt(0) == paths.AxisY {
		v.Pos.Y = stop
	} else {
		v.Pos.X = stop
	}
}

// move advances the vehicle dist pixels along its path. Distance left over at
// a waypoint carries into the next segment; past the final waypoint the
// vehicle keeps the last heading.
func (v *Vehicle) move(dist float64) {
	for dist > 0 {
		from, to, ok := v.Path.Segment(v.Segment)
		if !ok {
			v.Pos = v.Pos.Add(v.Path.Heading(v.Segment).Scale(dist))
			return
		}

		dir := to.Sub(from).Unit()
		rel := to.Sub(v.Pos)
		left := rel.X*dir.X + rel.Y*dir.Y
		if dist < left {
			v.Pos = v.Pos.Add(dir.Scale(dist))
			return
		}

		v.Pos = to
		dist -= math.Max(left, 0)
		v.Segment++
		v.Rotation = v.Path.RotationAt(v.Segment)
	}
}

func (t *Traffic) outOfBounds(v *Vehicle) bool {
	w := t.cfg.World
	m := w.ExitMargin
	return v.Pos.X < -m || v.Pos.X > w.Width+m || v.Pos.Y < -m || v.Pos.Y > w.Height+m
}

// sortLane orders a lane front to back.
func sortLane(lane paths.Lane, cars []*Vehicle) {
	slices.SortStableFunc(cars, func(a, b *Vehicle) int {
		switch {
		case ahead(lane, a, b):
			return -1
		case ahead(lane, b, a):
			return 1
		default:
			return 0
		}
	})
}

// ahead reports whether a is further along than b. Vehicles on a later
// segment lead; on the same segment and axis the travel direction decides;
// otherwise the lane's direction of approach does.
func ahead(lane paths.Lane, a, b *Vehicle) bool {
	if a.Segment != b.Segment {
		return a.Segment > b.Segment
	}

	aAxis, bAxis := a.Path.AxisAt(a.Segment), b.Path.AxisAt(b.Segment)
	aPos, bPos := paths.Coord(a.Pos, aAxis), paths.Coord(b.Pos, bAxis)

	_, _, aOnPath := a.Path.Segment(a.Segment)
	_, _, bOnPath := b.Path.Segment(b.Segment)
	if aOnPath && bOnPath && aAxis == bAxis {
		if a.Path.TravelSign(a.Segment) > 0 {
			return aPos > bPos
		}
		return aPos < bPos
	}

	if lane == paths.East || lane == paths.North {
		return aPos > bPos
	}
	return aPos < bPos
}
