package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-junction/internal/config"
	"github.com/vovakirdan/tui-junction/internal/core"
	"github.com/vovakirdan/tui-junction/internal/paths"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Validate and print the road geometry",
	Long: `Load the path table the game would use, validate it and print every
lane's routes with their waypoints, stop line, heading and axis per segment.

Search order: --paths, ~/.junction/configs/paths.yaml,
./configs/paths.yaml, then the built-in table.

Examples:
  junction paths
  junction paths --paths ./my-paths.yaml`,
	Args: cobra.NoArgs,
	Run:  runPaths,
}

func init() {
	pathsCmd.Flags().StringVar(&flagPaths, "paths", "", "Path to custom paths.yaml")
}

func runPaths(_ *cobra.Command, _ []string) {
	table, err := config.LoadPaths(flagPaths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, lane := range table.LaneList() {
		route, _ := table.Route(lane)
		fmt.Printf("%s (enters heading %.0f°, %s axis)\n", lane, route.Rotation, route.Axis)
		for _, p := range route.Paths {
			fmt.Printf("  %-12s stop %s\n", p.Name, fmtPoint(p.Stop))
			for i := range p.Segments() {
				from, to, _ := p.Segment(i)
				fmt.Printf("    %d: %s -> %s  %4.0f°  %s\n", i, fmtPoint(from), fmtPoint(to), p.RotationAt(i), p.AxisAt(i))
			}
		}
	}

	fmt.Println()
	fmt.Printf("OK: %d lanes, %d paths\n", len(table.LaneList()), countPaths(table))
}

func fmtPoint(v core.Vec2) string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

func countPaths(t paths.Table) int {
	n := 0
	for _, r := range t.Lanes {
		n += len(r.Paths)
	}
	return n
}
