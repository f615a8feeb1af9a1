package junction

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-junction/internal/config"
	"github.com/vovakirdan/tui-junction/internal/core"
	"github.com/vovakirdan/tui-junction/internal/paths"
)

func TestSpawnInLane(t *testing.T) {
	tr, cfg := newTestTraffic(1)

	v, res := tr.SpawnInLane(paths.East, 500, nil)
	if res != Spawned {
		t.Fatalf("SpawnInLane = %s, expected spawned", res)
	}

	if v.ID != "car-0" {
		t.Errorf("ID = %q, expected car-0", v.ID)
	}
	if v.Pos != v.Path.Origin() {
		t.Errorf("vehicle should start at the path origin, got %v", v.Pos)
	}
	if v.Segment != 0 || v.CurrentSpeed != 0 {
		t.Errorf("new vehicle should be on segment 0 at rest, got seg=%d speed=%f", v.Segment, v.CurrentSpeed)
	}
	if v.BaseSpeed < cfg.Vehicle.MinSpeed || v.BaseSpeed >= cfg.Vehicle.MaxSpeed {
		t.Errorf("BaseSpeed %f outside [%f, %f)", v.BaseSpeed, cfg.Vehicle.MinSpeed, cfg.Vehicle.MaxSpeed)
	}
	if v.TargetSpeed != v.BaseSpeed {
		t.Error("TargetSpeed should start at BaseSpeed")
	}
	if v.SpawnedAt != 500 {
		t.Errorf("SpawnedAt = %f, expected 500", v.SpawnedAt)
	}
	if tr.Count() != 1 || len(tr.Lane(paths.East)) != 1 {
		t.Error("vehicle should be tracked globally and per lane")
	}
}

func TestSpawnIDsCountFromZero(t *testing.T) {
	tr, _ := newTestTraffic(1)

	var got []string
	for _, lane := range paths.AllLanes {
		v, res := tr.SpawnInLane(lane, 0, nil)
		if res != Spawned {
			t.Fatalf("%s spawn = %s, expected spawned", lane, res)
		}
		got = append(got, v.ID)
	}

	want := []string{"car-0", "car-1", "car-2", "car-3"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IDs = %v, expected %v", got, want)
			break
		}
	}
}

// Paths of one lane may start at different points; spacing is measured
// from the origin of the path the new vehicle would take.
func TestSpawnSpacingUsesChosenPathOrigin(t *testing.T) {
	table := config.DefaultPathTable()
	east := table.Lanes[paths.East]
	east.Paths = append([]paths.Path(nil), east.Paths...)
	east.Paths[1] = paths.Path{
		Name:   "offset turn",
		Points: []core.Vec2{{X: 10, Y: 150}, {X: 280, Y: 150}, {X: 290, Y: 600}},
		Stop:   core.Vec2{X: 180, Y: 150},
	}
	table.Lanes[paths.East] = east
	table.Normalize()

	refused := 0
	for seed := int64(0); seed < 50; seed++ {
		cfg := config.DefaultJunctionConfig()
		tr := NewTraffic(&cfg, table, rand.New(rand.NewSource(seed)))
		parked := place(tr, paths.East, 1, pt(10, 150), 0)

		v, res := tr.SpawnInLane(paths.East, 0, nil)
		switch res {
		case Spawned:
			if d := v.Pos.Dist(parked.Pos); d < cfg.Spawn.MinDistance {
				t.Fatalf("seed %d: spawned %.1f px from a parked vehicle on %q", seed, d, v.Path.Name)
			}
			if v.Path.Name != "straight" {
				t.Errorf("seed %d: spawned on blocked path %q", seed, v.Path.Name)
			}
		case RefusedTooClose:
			refused++
		default:
			t.Fatalf("seed %d: SpawnInLane = %s", seed, res)
		}
	}

	if refused == 0 {
		t.Error("no spawn picked the blocked path across 50 seeds")
	}
}

func TestSpawnSpeedScaling(t *testing.T) {
	tr, _ := newTestTraffic(1)

	v, res := tr.SpawnInLane(paths.West, 0, func(base float64) float64 { return base * 10 })
	if res != Spawned {
		t.Fatalf("SpawnInLane = %s", res)
	}
	if v.BaseSpeed < 10 {
		t.Errorf("speed scaler not applied, BaseSpeed = %f", v.BaseSpeed)
	}
}

func TestSpawnRefusedTooClose(t *testing.T) {
	tr, _ := newTestTraffic(1)

	first, _ := tr.SpawnInLane(paths.North, 0, nil)
	if _, res := tr.SpawnInLane(paths.North, 0, nil); res != RefusedTooClose {
		t.Fatalf("second spawn = %s, expected too close", res)
	}

	// Other lanes are unaffected
	if _, res := tr.SpawnInLane(paths.South, 0, nil); res != Spawned {
		t.Errorf("south spawn = %s, expected spawned", res)
	}

	first.Pos.Y += 60
	if _, res := tr.SpawnInLane(paths.North, 0, nil); res != Spawned {
		t.Errorf("spawn after clearing the origin = %s, expected spawned", res)
	}
}

func TestSpawnLaneHysteresis(t *testing.T) {
	tr, cfg := newTestTraffic(7)

	var spawned []*Vehicle
	for i := 0; i < cfg.Spawn.LaneCap; i++ {
		v, res := tr.SpawnInLane(paths.East, 0, nil)
		if res != Spawned {
			t.Fatalf("spawn %d = %s, expected spawned", i, res)
		}
		v.Pos.X += 100 // clear the origin
		spawned = append(spawned, v)
	}

	if _, res := tr.SpawnInLane(paths.East, 0, nil); res != RefusedLaneFull {
		t.Fatalf("spawn at cap = %s, expected lane full", res)
	}
	if tr.SpawnAllowed(paths.East) {
		t.Fatal("lane should close at the cap")
	}

	// Draining to 4 keeps the lane closed
	tr.Remove(spawned[0], spawned[1])
	if tr.SpawnAllowed(paths.East) {
		t.Error("lane should stay closed above the resume level")
	}
	if _, res := tr.SpawnInLane(paths.East, 0, nil); res != RefusedLaneClosed {
		t.Errorf("spawn on closed lane = %s, expected lane closed", res)
	}

	tr.Remove(spawned[2])
	if !tr.SpawnAllowed(paths.East) {
		t.Error("lane should reopen at the resume level")
	}
	if got := len(tr.Lane(paths.East)); got != 3 {
		t.Errorf("lane count = %d, expected 3", got)
	}
}

func TestRemoveKeepsOrder(t *testing.T) {
	tr, _ := newTestTraffic(1)

	a := place(tr, paths.East, 0, pt(100, 250), 0)
	b := place(tr, paths.West, 0, pt(500, 325), 0)
	c := place(tr, paths.East, 0, pt(50, 250), 0)

	tr.Remove(b)

	vs := tr.Vehicles()
	if len(vs) != 2 || vs[0] != a || vs[1] != c {
		t.Errorf("Remove should keep insertion order, got %v", ids(vs))
	}
	if len(tr.Lane(paths.West)) != 0 {
		t.Error("removed vehicle still in its lane")
	}
}

func TestTrySpawnDeterministic(t *testing.T) {
	run := func() []string {
		tr, _ := newTestTraffic(99)
		var out []string
		for i := 0; i < 20; i++ {
			if v, res := tr.TrySpawn(float64(i), nil); res == Spawned {
				out = append(out, v.ID+":"+v.Lane.String()+":"+v.Path.Name)
				v.Pos = pt(-500, -500) // keep origins clear
			}
		}
		return out
	}

	a, b := run(), run()
	if len(a) == 0 {
		t.Fatal("no vehicles spawned")
	}
	if len(a) != len(b) {
		t.Fatalf("spawn counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("spawn %d differs: %s vs %s", i, a[i], b[i])
		}
	}
}

func ids(vs []*Vehicle) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	return out
}
