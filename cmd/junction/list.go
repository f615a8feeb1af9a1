package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-junction/internal/registry"
	"github.com/vovakirdan/tui-junction/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long: `Shows every game mode with a short description and, when the scores
database can be read, your best score in it.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	modes := registry.List()
	if len(modes) == 0 {
		fmt.Println(mutedStyle.Render("No modes available."))
		return
	}

	best := make(map[string]int)
	if store, err := storage.Open(flagDBPath); err == nil {
		for _, m := range modes {
			best[m.ID], _ = store.HighScore(m.ID)
		}
		store.Close()
	}

	fmt.Println(headingStyle.Render("Modes"))
	fmt.Println(modeTable(modes, best))
	fmt.Println(mutedStyle.Render("Run 'junction play <mode>' to start one."))
}

// modeTable lays out one row per mode. Modes without a recorded score show
// a dash.
func modeTable(modes []registry.GameInfo, best map[string]int) *table.Table {
	t := newTable("Mode", "Title", "Best", "About")
	for _, m := range modes {
		score := "-"
		if b := best[m.ID]; b > 0 {
			score = strconv.Itoa(b)
		}
		t.Row(m.ID, m.Title, score, m.Description)
	}
	return t
}
