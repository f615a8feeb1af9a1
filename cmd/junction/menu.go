package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-junction/internal/core"
	"github.com/vovakirdan/tui-junction/internal/platform/tui"
	"github.com/vovakirdan/tui-junction/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Pick a mode and a difficulty, play, and come back to the menu when the
run is over. The difficulty picked in the menu overrides --difficulty.

Controls:
  Up/Down/j/k     - Choose mode
  Left/Right      - Choose difficulty
  Enter/Space     - Play
  Tab             - Scoreboard
  Q               - Quit

Examples:
  junction menu
  junction menu --fps 30
  junction menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom junction.yaml")
	menuCmd.Flags().StringVar(&flagPaths, "paths", "", "Path to custom paths.yaml")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Default difficulty preset when the menu keeps the mode's own")
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()
	logger, logFile := openEventLog()
	defer logFile.Close()

	player := localPlayer()
	cfg := runtimeConfig()
	for again := true; again; {
		again, cfg = menuRound(store, logger, player, cfg)
	}
}

// menuRound shows the menu once and runs whatever the player picks. It
// reports whether to show the menu again, along with the config carrying
// the latest terminal size.
func menuRound(store *storage.Store, logger *log.Logger, player string, cfg core.RuntimeConfig) (bool, core.RuntimeConfig) {
	choice, err := tui.RunMenu(store, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return false, cfg
	}
	cfg = choice.Config

	switch {
	case choice.Quit:
		return false, cfg

	case choice.WantsScoreboard:
		back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return back, cfg
	}

	game, err := tui.NewGame(choice.GameID, choice.Difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		return true, cfg
	}

	run := cfg
	if flagSeed == 0 {
		run.Seed = time.Now().UnixNano() // Fresh traffic every run unless pinned
	}
	back, err := tui.Run(game, store, run, player, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
	}
	return back, cfg
}
