package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-junction/internal/games/junction"
	"github.com/vovakirdan/tui-junction/internal/platform/tui"
	"github.com/vovakirdan/tui-junction/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (default: junction).

Controls:
  N/Up       - Flip the north light
  S/Down     - Flip the south light
  E/Right    - Flip the east light
  W/Left     - Flip the west light
  Tab/A      - Flip every light
  Enter      - Start
  P          - Pause
  R          - Restart (after game over)
  B/Esc      - Back (on the start, pause or game over screen)
  Ctrl+S     - Save a screenshot to ~/.junction/screenshots
  Q/Ctrl+C   - Quit

A light governs the cars coming toward it, so north/south traffic obeys
the light on the far side of the junction.

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  junction play
  junction play junction_rush
  junction play --difficulty hard
  junction play --config ./my-junction.yaml --paths ./my-paths.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom junction.yaml")
	playCmd.Flags().StringVar(&flagPaths, "paths", "", "Path to custom paths.yaml")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := string(junction.ModeClassic)
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'junction list' to see available modes.")
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	logger, logFile := openEventLog()

	_, runErr := tui.Run(game, store, runtimeConfig(), localPlayer(), logger)

	// Close resources before potential exit
	if store != nil {
		store.Close()
	}
	logFile.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
