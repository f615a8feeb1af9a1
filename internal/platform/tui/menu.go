package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-junction/internal/config"
	"github.com/vovakirdan/tui-junction/internal/core"
	"github.com/vovakirdan/tui-junction/internal/registry"
	"github.com/vovakirdan/tui-junction/internal/storage"
)

// menuDifficulties is the order the difficulty selector cycles through.
// The empty preset keeps each mode's own tuning.
var menuDifficulties = []config.DifficultyPreset{
	"",
	config.DifficultyNormal,
	config.DifficultyEasy,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// menuChoice is how the player left the menu.
type menuChoice int

const (
	choiceNone menuChoice = iota
	choicePlay
	choiceScores
	choiceQuit
)

// menuEntry is one selectable mode with its best score.
type menuEntry struct {
	registry.GameInfo
	best int
}

var (
	menuLogoStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuTagStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuBestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel lets the player pick a mode and difficulty.
type MenuModel struct {
	entries    []menuEntry
	cursor     int
	difficulty int // Index into menuDifficulties
	config     core.RuntimeConfig
	keys       *KeyMapper
	choice     menuChoice
}

// NewMenuModel lists the registered modes with their high scores.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var entries []menuEntry
	for _, info := range registry.List() {
		e := menuEntry{GameInfo: info}
		if store != nil {
			e.best, _ = store.HighScore(info.ID)
		}
		entries = append(entries, e)
	}
	return MenuModel{entries: entries, config: cfg, keys: NewKeyMapper()}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update moves the selection and ends the program once a choice is made.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height

	case tea.KeyMsg:
		n := len(menuDifficulties)
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = min(m.cursor+1, max(len(m.entries)-1, 0))
		case MenuActionLeft:
			m.difficulty = (m.difficulty + n - 1) % n
		case MenuActionRight:
			m.difficulty = (m.difficulty + 1) % n
		case MenuActionSelect:
			if len(m.entries) > 0 {
				m.choice = choicePlay
			}
		case MenuActionScoreboard:
			m.choice = choiceScores
		case MenuActionQuit, MenuActionBack:
			m.choice = choiceQuit
		}
	}

	if m.choice != choiceNone {
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == choiceQuit {
		return ""
	}
	w := m.config.ScreenW

	lines := []string{
		"",
		menuLogoStyle.Render("J U N C T I O N"),
		menuTagStyle.Render("Keep the traffic moving"),
		"",
	}
	for i, e := range m.entries {
		line := "  " + e.Title
		if i == m.cursor {
			line = menuCursorStyle.Render("▶ " + e.Title)
		}
		if e.best > 0 {
			line += menuBestStyle.Render(fmt.Sprintf("  best %d", e.best))
		}
		lines = append(lines, line)
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Difficulty: ◀ %s ▶", presetLabel(m.Difficulty())),
		"",
		menuHintStyle.Render("↑/↓ mode · ←/→ difficulty · enter play · tab scores · q quit"),
	)

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(centerText(line, w))
		b.WriteByte('\n')
	}
	return b.String()
}

// Difficulty returns the preset shown in the selector.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return menuDifficulties[m.difficulty]
}

// IsQuitting reports whether the player quit from the menu.
func (m MenuModel) IsQuitting() bool {
	return m.choice == choiceQuit
}

// WantsScoreboard reports whether the player asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.choice == choiceScores
}

func presetLabel(p config.DifficultyPreset) string {
	if p == "" {
		return "default"
	}
	return string(p)
}

// centerText pads text on the left to center it in width columns.
// Styled text is measured without its escape sequences.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// MenuResult is what the player chose in the menu.
type MenuResult struct {
	GameID          string
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig // Carries the latest terminal size
	WantsScoreboard bool
	Quit            bool
}

// Result summarizes the player's choice. A menu left without a choice
// counts as quitting.
func (m MenuModel) Result() MenuResult {
	res := MenuResult{Config: m.config, Difficulty: m.Difficulty()}
	switch m.choice {
	case choicePlay:
		res.GameID = m.entries[m.cursor].ID
	case choiceScores:
		res.WantsScoreboard = true
	default:
		res.Quit = true
	}
	return res
}

// RunMenu shows the menu in its own program and returns the choice.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
