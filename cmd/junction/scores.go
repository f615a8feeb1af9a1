package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-junction/internal/registry"
	"github.com/vovakirdan/tui-junction/internal/storage"
)

const (
	topScoresShown  = 10
	recentRunsShown = 5
	dateLayout      = "2006-01-02 15:04"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores, lifetime stats and the latest runs
for a mode. Without a mode, prints a summary of every mode played.

Examples:
  junction scores
  junction scores junction
  junction scores junction_rush`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 1 && !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'junction list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		err = printSummary(store)
	} else {
		err = printMode(store, args[0])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading scores: %v\n", err)
		os.Exit(1)
	}
}

// newTable returns a borderless table in the style shared by every listing.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			s := lipgloss.NewStyle().PaddingRight(2)
			if row == table.HeaderRow {
				return s.Bold(true)
			}
			return s
		})
}

// printSummary lists lifetime stats for every mode with recorded scores.
func printSummary(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}

	fmt.Println(headingStyle.Render("All modes"))
	if len(all) == 0 {
		fmt.Println(mutedStyle.Render("No scores recorded yet. Run 'junction play' to set the first one!"))
		return nil
	}

	t := newTable("Mode", "Games", "Best", "Average", "Last played")
	for _, mode := range registry.List() {
		st, ok := all[mode.ID]
		if !ok {
			continue
		}
		t.Row(mode.Title, strconv.Itoa(st.Games), strconv.Itoa(st.HighScore),
			fmt.Sprintf("%.1f", st.AvgScore), st.LastPlayed.Format(dateLayout))
	}
	fmt.Println(t)
	return nil
}

// printMode prints the leaderboard, stats and latest runs for one mode.
func printMode(store *storage.Store, gameID string) error {
	scores, err := store.TopScores(gameID, topScoresShown)
	if err != nil {
		return err
	}

	fmt.Println(headingStyle.Render("High Scores - " + registry.Title(gameID)))
	if len(scores) == 0 {
		fmt.Println(mutedStyle.Render(fmt.Sprintf("No scores recorded yet. Play 'junction play %s' to set the first one!", gameID)))
		return nil
	}

	top := newTable("Rank", "Score", "Date")
	for i, sc := range scores {
		top.Row(strconv.Itoa(i+1), strconv.Itoa(sc.Score), sc.CreatedAt.Format(dateLayout))
	}
	fmt.Println(top)

	st, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("Best: %d  Games: %d  Average: %.1f  Cars cleared: %d  Best streak: %d\n",
		st.HighScore, st.Games, st.AvgScore, st.TotalExits, st.BestStreak)

	runs, err := store.RecentRuns(gameID, recentRunsShown)
	if err != nil || len(runs) == 0 {
		return err
	}

	fmt.Println()
	fmt.Println(headingStyle.Render("Recent runs"))
	recent := newTable("Player", "Score", "Exits", "Crashes", "Date")
	for _, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		recent.Row(player, strconv.Itoa(r.Score), strconv.Itoa(r.Exits),
			strconv.Itoa(r.Crashes), r.CreatedAt.Format(dateLayout))
	}
	fmt.Println(recent)
	return nil
}
