package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-junction/internal/config"
	"github.com/vovakirdan/tui-junction/internal/games/junction"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return s, cmd
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "carol", nil)

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("enter should start a game, screen = %d", m.screen)
	}

	// Esc on the start screen returns to the menu without ending the session
	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("esc should return to the menu, screen = %d", m.screen)
	}
	if m.quitting || cmd != nil {
		t.Error("returning to the menu must not quit the session")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("tab should open scores, screen = %d", m.screen)
	}
	if m.View() == "" {
		t.Error("scoreboard view should not be empty")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("esc should leave scores, screen = %d", m.screen)
	}

	m, cmd = sessionUpdate(t, m, runeKey("q"))
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}

func TestMenuDifficultySelector(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	if m.Difficulty() != "" {
		t.Errorf("menu should start on the default preset, got %q", m.Difficulty())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if m.Difficulty() != config.DifficultyNormal {
		t.Errorf("right should select normal, got %q", m.Difficulty())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(MenuModel)
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("left should wrap to fixed, got %q", m.Difficulty())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	res := m.Result()
	if res.GameID == "" || res.Difficulty != config.DifficultyFixed || res.Quit {
		t.Errorf("unexpected menu result %+v", res)
	}
}

func TestNewGameAppliesPreset(t *testing.T) {
	game, err := NewGame("junction_rush", config.DifficultyFixed)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	game.Reset(testConfig())

	jg, ok := game.(*junction.Game)
	if !ok {
		t.Fatalf("NewGame returned %T", game)
	}
	if jg.Config().Difficulty.Enabled {
		t.Error("fixed preset should disable progression for this game")
	}

	if _, err := NewGame("nope", ""); err == nil {
		t.Error("NewGame should fail for unknown modes")
	}
}
