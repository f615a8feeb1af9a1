package config

// The spawn interval never drops below this at full pressure, unless the
// base interval is already shorter.
const minSpawnIntervalMs = 500

// Ramp turns a run's progress into a difficulty level and the traffic
// pressure that goes with it. It is a value and safe to copy.
type Ramp struct {
	start   float64
	kind    string
	span    float64
	scaling ScalingConfig
}

// NewRamp builds a ramp from a difficulty config. A disabled config, or
// one with progression "none", holds the initial level for the whole run.
func NewRamp(cfg DifficultyConfig) Ramp {
	kind := cfg.Progression.Type
	if !cfg.Enabled {
		kind = "none"
	}
	return Ramp{
		start:   unit(cfg.InitialLevel),
		kind:    kind,
		span:    max(float64(cfg.Progression.MaxAt), 1),
		scaling: cfg.Scaling,
	}
}

// Progressive reports whether the level moves during a run.
func (r Ramp) Progressive() bool {
	return r.kind == "score" || r.kind == "time"
}

// Level returns the difficulty in [0, 1] after the given score and ticks.
// Progress runs from the initial level up to 1; a negative score counts as
// no progress.
func (r Ramp) Level(score, ticks int) float64 {
	var done float64
	switch r.kind {
	case "score":
		done = float64(score) / r.span
	case "time":
		done = float64(ticks) / r.span
	default:
		return r.start
	}
	return r.start + unit(done)*(1-r.start)
}

// Pressure is the spawn tuning in effect at one difficulty level.
type Pressure struct {
	Level           float64
	SpeedScale      float64 // Multiplies a path's base speed
	SpawnIntervalMs int
	SpawnChance     float64
}

// At returns the pressure on top of the base spawn settings.
func (r Ramp) At(score, ticks int, base SpawnConfig) Pressure {
	level := r.Level(score, ticks)
	cut := int(level * float64(r.scaling.SpawnIntervalReduction))
	return Pressure{
		Level:           level,
		SpeedScale:      1 + level*r.scaling.SpeedMultiplier,
		SpawnIntervalMs: max(base.IntervalMs-cut, min(base.IntervalMs, minSpawnIntervalMs)),
		SpawnChance:     min(base.Chance+level*r.scaling.SpawnChanceBoost, 1),
	}
}

func unit(v float64) float64 {
	return min(max(v, 0), 1)
}
