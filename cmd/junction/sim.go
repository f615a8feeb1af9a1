package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-junction/internal/config"
	"github.com/vovakirdan/tui-junction/internal/core"
	"github.com/vovakirdan/tui-junction/internal/games/junction"
	"github.com/vovakirdan/tui-junction/internal/paths"
	"github.com/vovakirdan/tui-junction/internal/registry"
)

var (
	flagSimTicks   int
	flagSimCycle   int
	flagSimVerbose bool
	flagSimJSON    bool
)

var simCmd = &cobra.Command{
	Use:   "sim [mode]",
	Short: "Run the game headless and report",
	Long: `Run a game without a terminal UI. The lights switch between the
north/south and east/west pairs every --cycle ticks (0 leaves them alone),
game events are logged to stderr and a final report is printed.

With the same --seed, two runs produce the same report.

Examples:
  junction sim --seed 42
  junction sim --ticks 36000 --cycle 300 --difficulty hard
  junction sim junction_rush --seed 7 --json
  junction sim --verbose   # include every spawn`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagSimCycle, "cycle", 240, "Light cycle period in ticks (0 = manual, lights never change)")
	simCmd.Flags().BoolVar(&flagSimVerbose, "verbose", false, "Log spawn events too")
	simCmd.Flags().BoolVar(&flagSimJSON, "json", false, "Log as JSON lines")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom junction.yaml")
	simCmd.Flags().StringVar(&flagPaths, "paths", "", "Path to custom paths.yaml")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(_ *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "sim"})
	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	if flagSimJSON {
		logger.SetFormatter(log.JSONFormatter)
	}

	if err := simulate(logger, args); err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

// simulate loads the tuning, runs the game and logs the report.
func simulate(logger *log.Logger, args []string) error {
	mode := junction.ModeClassic
	if len(args) > 0 {
		mode = junction.Mode(args[0])
	}
	if !registry.Exists(string(mode)) {
		return fmt.Errorf("unknown mode %q", mode)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadJunction(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	table, err := config.LoadPaths(flagPaths)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := junction.NewWithConfig(mode, cfg, table)
	game.SetPreset(preset)
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed})
	game.SetLightCycle(flagSimCycle)
	game.Start()

	logger.Info("simulation started", "mode", mode, "seed", seed, "ticks", flagSimTicks, "cycle", flagSimCycle)

	idle := core.NewInputFrame()
	for range flagSimTicks {
		res := game.Step(idle)
		for _, ev := range res.Events {
			if ev.Kind == "spawn" {
				logger.Debug(ev.Kind, ev.KeyVals()...)
				continue
			}
			logger.Info(ev.Kind, ev.KeyVals()...)
		}
		if res.State.GameOver {
			break
		}
	}

	report(logger, game.Snapshot())
	return nil
}

// report logs the final snapshot.
func report(logger *log.Logger, s junction.Snapshot) {
	kv := []any{
		"tick", s.Tick,
		"state", s.State,
		"score", s.Score,
		"exits", s.Exits,
		"crashes", s.Crashes,
		"best_streak", s.BestStreak,
		"vehicles", s.Vehicles,
		"crash_phase", s.Crash,
	}
	for i, lane := range paths.AllLanes {
		kv = append(kv, "lane_"+lane.String(), s.LaneCounts[i], "light_"+lane.String(), s.Lights[i])
	}
	logger.Info("report", kv...)
}
