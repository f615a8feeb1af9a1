package config

import (
	"math"
	"testing"
)

func scoreDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling: ScalingConfig{
			SpeedMultiplier:        0.5,
			SpawnIntervalReduction: 1000,
			SpawnChanceBoost:       0.2,
		},
	}
}

func TestRampLevel(t *testing.T) {
	r := NewRamp(scoreDifficulty())

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0},
		{50, 0.5},
		{100, 1},
		{500, 1},
		{-10, 0}, // crashes can push the score negative
	}

	for _, tc := range tests {
		if got := r.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %f, expected %f", tc.score, got, tc.expected)
		}
	}
}

func TestRampInitialLevel(t *testing.T) {
	cfg := scoreDifficulty()
	cfg.InitialLevel = 0.5
	r := NewRamp(cfg)

	if got := r.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %f, expected 0.5", got)
	}
	if got := r.Level(100, 0); got != 1 {
		t.Errorf("Level at max = %f, expected 1", got)
	}

	cfg.InitialLevel = 3
	if got := NewRamp(cfg).Level(0, 0); got != 1 {
		t.Errorf("initial level should clamp to 1, got %f", got)
	}
}

func TestRampTimeProgression(t *testing.T) {
	cfg := scoreDifficulty()
	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 600}
	r := NewRamp(cfg)

	if got := r.Level(1000, 300); got != 0.5 {
		t.Errorf("time progression should ignore score, got %f", got)
	}
}

func TestRampHeld(t *testing.T) {
	tests := []struct {
		name string
		edit func(*DifficultyConfig)
	}{
		{"disabled", func(c *DifficultyConfig) { c.Enabled = false }},
		{"none", func(c *DifficultyConfig) { c.Progression.Type = "none" }},
		{"unknown type", func(c *DifficultyConfig) { c.Progression.Type = "steps" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := scoreDifficulty()
			cfg.InitialLevel = 0.3
			tc.edit(&cfg)
			r := NewRamp(cfg)

			if r.Progressive() {
				t.Error("Progressive() should be false")
			}
			if got := r.Level(100, 1000); got != 0.3 {
				t.Errorf("held ramp should stay at initial level, got %f", got)
			}
		})
	}
}

func TestRampPressure(t *testing.T) {
	r := NewRamp(scoreDifficulty())
	base := SpawnConfig{IntervalMs: 2000, Chance: 0.9}

	full := r.At(100, 0, base)
	if full.SpeedScale != 1.5 {
		t.Errorf("SpeedScale at max = %f, expected 1.5", full.SpeedScale)
	}
	if full.SpawnChance != 1 {
		t.Errorf("SpawnChance should cap at 1, got %f", full.SpawnChance)
	}
	if full.SpawnIntervalMs != 1000 {
		t.Errorf("SpawnIntervalMs at max = %d, expected 1000", full.SpawnIntervalMs)
	}

	if got := r.At(50, 0, base).SpawnIntervalMs; got != 1500 {
		t.Errorf("SpawnIntervalMs at half = %d, expected 1500", got)
	}
	if got := r.At(100, 0, SpawnConfig{IntervalMs: 1200}).SpawnIntervalMs; got != 500 {
		t.Errorf("SpawnIntervalMs should floor at 500, got %d", got)
	}
	if got := r.At(100, 0, SpawnConfig{IntervalMs: 100}).SpawnIntervalMs; got != 100 {
		t.Errorf("a short base interval should not be raised, got %d", got)
	}
}
