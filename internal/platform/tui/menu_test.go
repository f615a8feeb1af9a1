package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	menu, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return menu, cmd
}

func TestMenuChoices(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		scores bool
		quit   bool
		play   bool
	}{
		{"enter plays", tea.KeyMsg{Type: tea.KeyEnter}, false, false, true},
		{"tab opens scores", tea.KeyMsg{Type: tea.KeyTab}, true, false, false},
		{"q quits", runeKey("q"), false, true, false},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, false, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, cmd := menuUpdate(t, NewMenuModel(nil, testConfig()), tc.msg)
			if cmd == nil {
				t.Error("a choice should end the menu program")
			}
			res := m.Result()
			if res.WantsScoreboard != tc.scores || res.Quit != tc.quit || (res.GameID != "") != tc.play {
				t.Errorf("Result = %+v", res)
			}
		})
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	for range 10 {
		m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.entries)-1 {
		t.Errorf("cursor = %d, expected last entry %d", m.cursor, len(m.entries)-1)
	}
	for range 10 {
		m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected 0", m.cursor)
	}

	m, cmd := menuUpdate(t, m, runeKey("x"))
	if cmd != nil || m.IsQuitting() {
		t.Error("unbound keys should leave the menu open")
	}
}

func TestMenuViewListsModes(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	view := m.View()
	for _, want := range []string{"J U N C T I O N", "Junction", "default"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("text wider than the screen should be kept, got %q", got)
	}
}
