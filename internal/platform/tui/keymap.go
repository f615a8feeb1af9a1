package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-junction/internal/core"
)

// actionBinding ties a key binding to the action it produces.
type actionBinding[A comparable] struct {
	key    key.Binding
	action A
}

func bind[A comparable](action A, help string, keys ...string) actionBinding[A] {
	return actionBinding[A]{
		key:    key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help)),
		action: action,
	}
}

// match returns the action of the first binding msg matches.
func match[A comparable](bindings []actionBinding[A], msg tea.KeyMsg, none A) A {
	for _, b := range bindings {
		if key.Matches(msg, b.key) {
			return b.action
		}
	}
	return none
}

// KeyMapper translates key messages into game and menu actions.
type KeyMapper struct {
	game []actionBinding[core.Action]
	menu []actionBinding[MenuAction]
}

// NewKeyMapper returns a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		game: []actionBinding[core.Action]{
			bind(core.ActionQuit, "quit", "q", "ctrl+c"),
			bind(core.ActionToggleNorth, "north light", "n", "up"),
			bind(core.ActionToggleSouth, "south light", "s", "down"),
			bind(core.ActionToggleEast, "east light", "e", "right"),
			bind(core.ActionToggleWest, "west light", "w", "left"),
			bind(core.ActionToggleAll, "all lights", "tab", "a"),
			bind(core.ActionConfirm, "start", "enter", " "),
			bind(core.ActionBack, "menu", "esc", "b"),
			bind(core.ActionPause, "pause", "p"),
			bind(core.ActionRestart, "restart", "r"),
		},
		menu: []actionBinding[MenuAction]{
			bind(MenuActionQuit, "quit", "q", "ctrl+c"),
			bind(MenuActionUp, "up", "up", "w", "k"),
			bind(MenuActionDown, "down", "down", "s", "j"),
			bind(MenuActionLeft, "easier", "left", "a", "h"),
			bind(MenuActionRight, "harder", "right", "d", "l"),
			bind(MenuActionSelect, "play", "enter", " "),
			bind(MenuActionBack, "back", "esc", "b"),
			bind(MenuActionScoreboard, "scores", "tab"),
		},
	}
}

// MapKey returns the game action for a key, or ActionNone, and whether
// the key asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = match(km.game, msg, core.ActionNone)
	return action, action == core.ActionQuit
}

// MapKeyToFrame records the key's action in frame and reports whether the
// key asks to quit.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Set(action)
	return isQuit
}

// MenuAction is a menu command derived from a key.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction returns the menu action for a key, or MenuActionNone.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return match(km.menu, msg, MenuActionNone)
}
