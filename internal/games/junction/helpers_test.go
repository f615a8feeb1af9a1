package junction

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-junction/internal/config"
	"github.com/vovakirdan/tui-junction/internal/core"
	"github.com/vovakirdan/tui-junction/internal/paths"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  100,
		ScreenH:  40,
		TickRate: 60,
		Seed:     seed,
	}
}

// quiet disables random spawning and difficulty so tests control every vehicle.
func quiet(cfg *config.JunctionConfig) {
	cfg.Spawn.Chance = 0
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.InitialLevel = 0
}

// newTestGame returns a started game with default geometry.
func newTestGame(t *testing.T, mutate func(*config.JunctionConfig)) *Game {
	t.Helper()
	cfg := config.DefaultJunctionConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := NewWithConfig(ModeClassic, cfg, config.DefaultPathTable())
	g.Reset(testRuntime(42))
	g.Start()
	return g
}

func newTestTraffic(seed int64) (*Traffic, *config.JunctionConfig) {
	cfg := config.DefaultJunctionConfig()
	return NewTraffic(&cfg, config.DefaultPathTable(), rand.New(rand.NewSource(seed))), &cfg
}

// place puts a vehicle directly onto the map, bypassing the spawner.
func place(tr *Traffic, lane paths.Lane, pathIdx int, pos core.Vec2, segment int) *Vehicle {
	route, _ := tr.table.Route(lane)
	p := route.Paths[pathIdx]
	v := &Vehicle{
		ID:          fmt.Sprintf("car-%d", tr.nextID),
		Lane:        lane,
		Path:        p,
		Pos:         pos,
		Segment:     segment,
		Rotation:    p.RotationAt(segment),
		BaseSpeed:   1.5,
		TargetSpeed: 1.5,
		AccelFactor: tr.cfg.Vehicle.AccelFactor,
		DesiredGap:  tr.cfg.Vehicle.DesiredGap,
		Color:       core.ColorBlue,
		SpawnedAt:   -1000,
	}
	tr.nextID++
	tr.vehicles = append(tr.vehicles, v)
	tr.lanes[lane] = append(tr.lanes[lane], v)
	return v
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func eventKinds(events []core.Event) map[string]int {
	kinds := make(map[string]int)
	for _, e := range events {
		kinds[e.Kind]++
	}
	return kinds
}
