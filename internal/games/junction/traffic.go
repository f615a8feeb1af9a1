package junction

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-junction/internal/config"
	"github.com/vovakirdan/tui-junction/internal/paths"
)

// SpawnResult describes the outcome of a spawn attempt.
type SpawnResult int

const (
	Spawned SpawnResult = iota
	RefusedLaneClosed
	RefusedLaneFull
	RefusedTooClose
	RefusedNoRoute
)

func (r SpawnResult) String() string {
	switch r {
	case Spawned:
		return "spawned"
	case RefusedLaneClosed:
		return "lane closed"
	case RefusedLaneFull:
		return "lane full"
	case RefusedTooClose:
		return "too close"
	case RefusedNoRoute:
		return "no route"
	default:
		return "unknown"
	}
}

// Traffic owns every vehicle on the map. Vehicles are kept both in insertion
// order (for collision checks) and per lane (for following).
type Traffic struct {
	cfg   *config.JunctionConfig
	table paths.Table
	rng   *rand.Rand

	vehicles     []*Vehicle
	lanes        map[paths.Lane][]*Vehicle
	spawnAllowed map[paths.Lane]bool
	nextID       int
}

// NewTraffic creates an empty road network for the given geometry.
func NewTraffic(cfg *config.JunctionConfig, table paths.Table, rng *rand.Rand) *Traffic {
	t := &Traffic{cfg: cfg, table: table, rng: rng}
	t.Reset(rng)
	return t
}

// Reset removes every vehicle and reopens every lane.
func (t *Traffic) Reset(rng *rand.Rand) {
	t.rng = rng
	t.vehicles = t.vehicles[:0]
	t.lanes = make(map[paths.Lane][]*Vehicle, len(paths.AllLanes))
	t.spawnAllowed = make(map[paths.Lane]bool, len(paths.AllLanes))
	for _, lane := range paths.AllLanes {
		t.spawnAllowed[lane] = true
	}
	t.nextID = 0
}

// Vehicles returns all vehicles in insertion order.
func (t *Traffic) Vehicles() []*Vehicle {
	return t.vehicles
}

// Lane returns the vehicles of one lane, front first after the last motion update.
func (t *Traffic) Lane(lane paths.Lane) []*Vehicle {
	return t.lanes[lane]
}

// Count returns the total number of vehicles.
func (t *Traffic) Count() int {
	return len(t.vehicles)
}

// SpawnAllowed reports whether a lane currently accepts new vehicles.
func (t *Traffic) SpawnAllowed(lane paths.Lane) bool {
	return t.spawnAllowed[lane]
}

// TrySpawn picks a random lane and attempts to put a vehicle on it.
// speed scales the random base speed, typically by difficulty.
func (t *Traffic) TrySpawn(now float64, speed func(float64) float64) (*Vehicle, SpawnResult) {
	lanes := t.table.LaneList()
	if len(lanes) == 0 {
		return nil, RefusedNoRoute
	}
	lane := lanes[t.rng.Intn(len(lanes))]
	return t.SpawnInLane(lane, now, speed)
}

// SpawnInLane attempts to put a vehicle on a specific lane.
func (t *Traffic) SpawnInLane(lane paths.Lane, now float64, speed func(float64) float64) (*Vehicle, SpawnResult) {
	if !t.spawnAllowed[lane] {
		return nil, RefusedLaneClosed
	}
	if len(t.lanes[lane]) >= t.cfg.Spawn.LaneCap {
		t.spawnAllowed[lane] = false
		return nil, RefusedLaneFull
	}

	route, ok := t.table.Route(lane)
	if !ok || len(route.Paths) == 0 {
		return nil, RefusedNoRoute
	}

	path := route.Paths[t.rng.Intn(len(route.Paths))]
	origin := path.Origin()
	for _, other := range t.lanes[lane] {
		if other.Pos.Dist(origin) < t.cfg.Spawn.MinDistance {
			return nil, RefusedTooClose
		}
	}

	color := vehicleColors[t.rng.Intn(len(vehicleColors))]
	vc := t.cfg.Vehicle
	base := vc.MinSpeed + t.rng.Float64()*(vc.MaxSpeed-vc.MinSpeed)
	if speed != nil {
		base = speed(base)
	}

	v := &Vehicle{
		ID:          fmt.Sprintf("car-%d", t.nextID),
		Lane:        lane,
		Path:        path,
		Pos:         origin,
		Rotation:    path.RotationAt(0),
		BaseSpeed:   base,
		TargetSpeed: base,
		AccelFactor: vc.AccelFactor,
		DesiredGap:  vc.DesiredGap,
		Color:       color,
		SpawnedAt:   now,
	}
	t.nextID++

	t.vehicles = append(t.vehicles, v)
	t.lanes[lane] = append(t.lanes[lane], v)
	t.updateLaneFlag(lane)
	return v, Spawned
}

// Remove takes vehicles off the map and updates lane flags.
func (t *Traffic) Remove(gone ...*Vehicle) {
	if len(gone) == 0 {
		return
	}
	drop := make(map[*Vehicle]bool, len(gone))
	touched := make(map[paths.Lane]bool)
	for _, v := range gone {
		drop[v] = true
		touched[v.Lane] = true
	}

	t.vehicles = without(t.vehicles, drop)
	for _, lane := range paths.AllLanes {
		if touched[lane] {
			t.lanes[lane] = without(t.lanes[lane], drop)
			t.updateLaneFlag(lane)
		}
	}
}

// Freeze zeroes every vehicle's speed.
func (t *Traffic) Freeze() {
	for _, v := range t.vehicles {
		v.TargetSpeed = 0
		v.CurrentSpeed = 0
	}
}

// updateLaneFlag applies the spawn hysteresis: a lane closes above the cap
// and reopens only once it has drained to the resume level.
func (t *Traffic) updateLaneFlag(lane paths.Lane) {
	n := len(t.lanes[lane])
	switch {
	case n > t.cfg.Spawn.LaneCap:
		t.spawnAllowed[lane] = false
	case n <= t.cfg.Spawn.ResumeAt:
		t.spawnAllowed[lane] = true
	}
}

func without(vs []*Vehicle, drop map[*Vehicle]bool) []*Vehicle {
	out := vs[:0]
	for _, v := range vs {
		if !drop[v] {
			out = append(out, v)
		}
	}
	// Clear the tail so removed vehicles can be collected
	for i := len(out); i < len(vs); i++ {
		vs[i] = nil
	}
	return out
}
