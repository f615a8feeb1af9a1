package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-junction/internal/paths"
)

// UserDir is the per-user directory under $HOME holding configs, scores
// and logs.
const UserDir = ".junction"

// LoadJunction reads the game configuration from the first of: customPath,
// ~/.junction/configs/junction.yaml, ./configs/junction.yaml, the embedded
// default. A file is decoded over the defaults, so it only needs the keys
// it changes.
func LoadJunction(customPath string) (JunctionConfig, error) {
	cfg := DefaultJunctionConfig()
	if err := decodeFirst(candidates("junction.yaml", customPath), defaultJunctionYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadPaths reads the road geometry table from the same locations as
// LoadJunction, using paths.yaml.
func LoadPaths(customPath string) (paths.Table, error) {
	var table paths.Table
	if err := decodeFirst(candidates("paths.yaml", customPath), defaultPathsYAML, &table); err != nil {
		return table, err
	}
	if len(table.Lanes) == 0 {
		table = DefaultPathTable()
	}
	table.Normalize()
	return table, table.Validate()
}

// source is one place a config file may live. Required sources must exist
// and parse; the others are skipped when missing or broken.
type source struct {
	path     string
	required bool
}

func candidates(filename, customPath string) []source {
	if customPath != "" {
		return []source{{path: customPath, required: true}}
	}
	var out []source
	if home, err := os.UserHomeDir(); err == nil {
		out = append(out, source{path: filepath.Join(home, UserDir, "configs", filename)})
	}
	return append(out, source{path: filepath.Join("configs", filename)})
}

// decodeFirst decodes the first usable source into out, falling back to
// the embedded document.
func decodeFirst(sources []source, embedded []byte, out any) error {
	for _, src := range sources {
		data, err := os.ReadFile(src.path)
		if err != nil {
			if src.required {
				return fmt.Errorf("failed to read config %s: %w", src.path, err)
			}
			continue
		}

		if err := yaml.Unmarshal(data, out); err != nil {
			if src.required {
				return fmt.Errorf("failed to parse config %s: %w", src.path, err)
			}
			continue
		}
		return nil
	}

	// The hardcoded defaults already in out stand if the embed is unusable
	_ = yaml.Unmarshal(embedded, out)
	return nil
}

// presetTraffic is the spawn and speed tuning a preset layers on top of
// the loaded config. Zero fields leave the config alone.
var presetTraffic = map[DifficultyPreset]struct {
	intervalMs int
	chance     float64
	maxSpeed   float64
}{
	DifficultyEasy: {intervalMs: 2500, chance: 0.7},
	DifficultyHard: {intervalMs: 1500, maxSpeed: 2.5},
}

// ApplyPreset adjusts cfg for a difficulty preset. The empty preset keeps
// the config as loaded; "fixed" turns progression off.
func ApplyPreset(cfg *JunctionConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}

	cfg.Difficulty.Enabled = !IsFixedPreset(preset)
	if cfg.Difficulty.Enabled {
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	t, ok := presetTraffic[preset]
	if !ok {
		return
	}
	if t.intervalMs > 0 {
		cfg.Spawn.IntervalMs = t.intervalMs
	}
	if t.chance > 0 {
		cfg.Spawn.Chance = t.chance
	}
	if t.maxSpeed > 0 {
		cfg.Vehicle.MaxSpeed = t.maxSpeed
	}
}
