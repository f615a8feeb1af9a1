package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-junction/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"n", runeKey("n"), core.ActionToggleNorth, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionToggleNorth, false},
		{"s", runeKey("s"), core.ActionToggleSouth, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionToggleSouth, false},
		{"e", runeKey("e"), core.ActionToggleEast, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionToggleEast, false},
		{"w", runeKey("w"), core.ActionToggleWest, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionToggleWest, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionToggleAll, false},
		{"a", runeKey("a"), core.ActionToggleAll, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"b", runeKey("b"), core.ActionBack, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action {
				t.Errorf("MapKey(%q) action = %v, expected %v", tc.msg.String(), action, tc.action)
			}
			if quit != tc.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tc.msg.String(), quit, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("n"), &frame) {
		t.Error("n should not quit")
	}
	if km.MapKeyToFrame(runeKey("e"), &frame) {
		t.Error("e should not quit")
	}
	km.MapKeyToFrame(runeKey("z"), &frame)

	if !frame.Has(core.ActionToggleNorth) || !frame.Has(core.ActionToggleEast) {
		t.Errorf("frame should hold both toggles, got %v", frame)
	}
	if len(frame.Actions()) != 2 {
		t.Errorf("unbound keys should not add actions, got %v", frame)
	}

	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("q should report quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.action {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.action)
		}
	}
}
