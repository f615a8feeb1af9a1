package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-junction/internal/core"
	"github.com/vovakirdan/tui-junction/internal/paths"
)

//go:embed defaults/junction.yaml
var defaultJunctionYAML []byte

//go:embed defaults/paths.yaml
var defaultPathsYAML []byte

// DefaultJunctionConfig returns the default game configuration.
func DefaultJunctionConfig() JunctionConfig {
	return JunctionConfig{
		World: WorldConfig{
			Width:      600,
			Height:     600,
			ExitMargin: 50,
			Intersection: BoundsConfig{
				Left:   240,
				Top:    240,
				Right:  360,
				Bottom: 360,
			},
		},
		Spawn: SpawnConfig{
			IntervalMs:  2000,
			Chance:      0.8,
			LaneCap:     6,
			ResumeAt:    3,
			MinDistance: 50,
		},
		Vehicle: VehicleConfig{
			Width:       40,
			Height:      25,
			MinSpeed:    1.0,
			MaxSpeed:    2.0,
			AccelFactor: 0.4,
			DesiredGap:  40,
			FadeInMs:    250,
			StopSnap:    5,
		},
		Following: FollowingConfig{
			TurnGapFactor: 1.3,
			Bands: []FollowBand{
				{Below: 0.9, Factor: 0},
				{Below: 1.1, Factor: 0.6},
				{Below: 1.3, Factor: 0.85},
				{Below: 1.5, Factor: 1.0},
			},
		},
		Crash: CrashConfig{
			OverlapThreshold:  0.5,
			Penalty:           5,
			FreezeMs:          5000,
			FlickerMs:         1500,
			FlickerIntervalMs: 150,
			RecoveryMs:        1500,
		},
		Scoring: ScoringConfig{
			ExitPoints:       1,
			StreakTimeoutMs:  2000,
			StreakBonusEvery: 4,
			BonusDisplayMs:   1500,
			Milestone:        69,
			MilestoneHoldMs:  1500,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 150,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:        0.5,
				SpawnIntervalReduction: 1000,
				SpawnChanceBoost:       0.2,
			},
		},
	}
}

// DefaultPathTable returns the built-in road geometry, normalized.
func DefaultPathTable() paths.Table {
	pt := func(x, y float64) core.Vec2 { return core.Vec2{X: x, Y: y} }

	t := paths.Table{Lanes: map[paths.Lane]paths.Route{
		paths.East: {Rotation: 0, Axis: paths.AxisX, Paths: []paths.Path{
			{Name: "straight", Points: []core.Vec2{pt(10, 250), pt(600, 250)}, Stop: pt(180, 250)},
			{Name: "right turn", Points: []core.Vec2{pt(10, 250), pt(280, 250), pt(290, 600)}, Stop: pt(180, 250)},
		}},
		paths.West: {Rotation: 180, Axis: paths.AxisX, Paths: []paths.Path{
			{Name: "straight", Points: []core.Vec2{pt(560, 325), pt(-40, 325)}, Stop: pt(390, 325)},
			{Name: "right turn", Points: []core.Vec2{pt(560, 325), pt(280, 325), pt(270, -40)}, Stop: pt(390, 325)},
		}},
		paths.North: {Rotation: 90, Axis: paths.AxisY, Paths: []paths.Path{
			{Name: "straight", Points: []core.Vec2{pt(250, 10), pt(260, 600)}, Stop: pt(260, 180)},
			{Name: "right turn", Points: []core.Vec2{pt(250, 10), pt(260, 280), pt(600, 290)}, Stop: pt(260, 180)},
		}},
		paths.South: {Rotation: -90, Axis: paths.AxisY, Paths: []paths.Path{
			{Name: "straight", Points: []core.Vec2{pt(310, 560), pt(300, -40)}, Stop: pt(300, 390)},
			{Name: "right turn", Points: []core.Vec2{pt(310, 560), pt(300, 280), pt(-40, 270)}, Stop: pt(300, 390)},
		}},
	}}
	t.Normalize()
	return t
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "junction":
		return defaultJunctionYAML
	case "paths":
		return defaultPathsYAML
	default:
		return nil
	}
}
