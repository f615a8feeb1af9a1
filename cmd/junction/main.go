// junction is a terminal traffic game: keep a four-way intersection moving by
// flipping its lights, and do not let the cars crash.
//
// Usage:
//
//	junction list              - List available modes
//	junction play [mode]       - Play a mode (default: junction)
//	junction menu              - Start menu to pick a mode interactively
//	junction serve             - Start SSH server for remote play
//	junction scores [mode]     - Show high scores and recent runs
//	junction sim               - Run the simulation headless and report
//	junction paths             - Validate and print the road geometry
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.junction/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the game modes
	_ "github.com/vovakirdan/tui-junction/internal/games/junction"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "junction",
	Short: "Junction - keep the traffic moving in your terminal",
	Long: `Junction is a terminal traffic game. Cars arrive from four directions
and follow fixed routes through a single intersection. Flip the lights to
let them through; every car that leaves scores, every crash costs.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  sim      - Headless simulation report
  paths    - Validate and print the road geometry

Examples:
  junction play
  junction play junction_rush --difficulty easy
  junction menu
  junction serve --ssh :2222
  junction sim --ticks 3600 --cycle 240`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.junction/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(pathsCmd)
}
