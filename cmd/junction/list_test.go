package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-junction/internal/registry"
)

func TestModeTable(t *testing.T) {
	modes := []registry.GameInfo{
		{ID: "junction", Title: "Junction", Description: "Traffic picks up as your score climbs"},
		{ID: "junction_rush", Title: "Junction (Rush Hour)", Description: "Starts busy"},
	}

	out := modeTable(modes, map[string]int{"junction": 42}).String()

	for _, want := range []string{"junction_rush", "Junction (Rush Hour)", "42", "Traffic picks up", "Starts busy"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(out, "\n")
	for _, line := range lines {
		if strings.Contains(line, "junction_rush") && !strings.Contains(line, "-") {
			t.Errorf("mode without a score should show a dash: %q", line)
		}
	}
}
