// Package config provides YAML-based game configuration loading and
// difficulty management for the junction game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-junction/internal/core"
)

// JunctionConfig contains all tuning for the intersection game.
type JunctionConfig struct {
	World      WorldConfig      `yaml:"world"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Vehicle    VehicleConfig    `yaml:"vehicle"`
	Following  FollowingConfig  `yaml:"following"`
	Crash      CrashConfig      `yaml:"crash"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield in world pixels.
type WorldConfig struct {
	Width        float64      `yaml:"width"`
	Height       float64      `yaml:"height"`
	ExitMargin   float64      `yaml:"exit_margin"` // Vehicles this far outside the world are gone
	Intersection BoundsConfig `yaml:"intersection"`
}

// BoundsConfig is an axis-aligned rectangle.
type BoundsConfig struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// Box returns the bounds as a world box.
func (b BoundsConfig) Box() core.Box {
	return core.Box{Left: b.Left, Top: b.Top, Right: b.Right, Bottom: b.Bottom}
}

// SpawnConfig defines how often and where vehicles appear.
type SpawnConfig struct {
	IntervalMs  int     `yaml:"interval_ms"`
	Chance      float64 `yaml:"chance"`       // Probability a spawn attempt is made each interval
	LaneCap     int     `yaml:"lane_cap"`     // Lane stops spawning at this many vehicles
	ResumeAt    int     `yaml:"resume_at"`    // Lane resumes once it drains to this many
	MinDistance float64 `yaml:"min_distance"` // Clearance required around the spawn point
}

// VehicleConfig defines vehicle size and motion parameters.
type VehicleConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	AccelFactor float64 `yaml:"accel_factor"` // Fraction of the speed error closed per tick
	DesiredGap  float64 `yaml:"desired_gap"`
	FadeInMs    int     `yaml:"fade_in_ms"`
	StopSnap    float64 `yaml:"stop_snap"` // A stopped vehicle this close to the line stays stopped
}

// FollowingConfig defines the car-following speed bands.
type FollowingConfig struct {
	TurnGapFactor float64      `yaml:"turn_gap_factor"` // Gap multiplier once either car is past its first segment
	Bands         []FollowBand `yaml:"bands"`
}

// FollowBand caps a follower's speed to Factor times the leader's speed when
// the gap is below Below times the effective gap. Bands are checked in order.
type FollowBand struct {
	Below  float64 `yaml:"below"`
	Factor float64 `yaml:"factor"`
}

// CrashConfig defines collision detection and the crash sequence timing.
type CrashConfig struct {
	OverlapThreshold  float64 `yaml:"overlap_threshold"` // Fraction of a vehicle's area that must overlap
	Penalty           int     `yaml:"penalty"`
	FreezeMs          int     `yaml:"freeze_ms"`
	FlickerMs         int     `yaml:"flicker_ms"`
	FlickerIntervalMs int     `yaml:"flicker_interval_ms"`
	RecoveryMs        int     `yaml:"recovery_ms"`
}

// ScoringConfig defines points and streaks.
type ScoringConfig struct {
	ExitPoints       int `yaml:"exit_points"`
	StreakTimeoutMs  int `yaml:"streak_timeout_ms"`
	StreakBonusEvery int `yaml:"streak_bonus_every"`
	BonusDisplayMs   int `yaml:"bonus_display_ms"`
	Milestone        int `yaml:"milestone"`
	MilestoneHoldMs  int `yaml:"milestone_hold_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier        float64 `yaml:"speed_multiplier"`         // Added to vehicle speed at max difficulty
	SpawnIntervalReduction int     `yaml:"spawn_interval_reduction"` // Milliseconds cut from the spawn interval at max difficulty
	SpawnChanceBoost       float64 `yaml:"spawn_chance_boost"`       // Added to spawn chance at max difficulty
}

// Validate reports configuration values the simulation cannot run with.
func (c JunctionConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive")
	b := c.World.Intersection
	check(b.Right > b.Left && b.Bottom > b.Top, "intersection bounds are empty")
	check(c.Spawn.IntervalMs > 0, "spawn.interval_ms must be positive")
	check(c.Spawn.Chance >= 0 && c.Spawn.Chance <= 1, "spawn.chance must be within [0, 1]")
	check(c.Spawn.LaneCap > 0, "spawn.lane_cap must be positive")
	check(c.Spawn.ResumeAt >= 0 && c.Spawn.ResumeAt < c.Spawn.LaneCap, "spawn.resume_at must be below lane_cap")
	check(c.Vehicle.Width > 0 && c.Vehicle.Height > 0, "vehicle size must be positive")
	check(c.Vehicle.MinSpeed > 0 && c.Vehicle.MaxSpeed >= c.Vehicle.MinSpeed, "vehicle speed range is invalid")
	check(c.Vehicle.AccelFactor > 0 && c.Vehicle.AccelFactor <= 1, "vehicle.accel_factor must be within (0, 1]")
	check(c.Crash.FlickerIntervalMs > 0, "crash.flicker_interval_ms must be positive")
	check(c.Crash.OverlapThreshold > 0 && c.Crash.OverlapThreshold <= 1, "crash.overlap_threshold must be within (0, 1]")
	check(c.Scoring.StreakBonusEvery > 0, "scoring.streak_bonus_every must be positive")

	prev := 0.0
	for i, band := range c.Following.Bands {
		check(band.Below > prev, "following.bands[%d] must increase", i)
		prev = band.Below
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name is accepted and means
// "keep the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
