package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-junction/internal/registry"
	"github.com/vovakirdan/tui-junction/internal/storage"
)

const (
	boardScoreLimit = 100
	boardRunLimit   = 50
	boardChrome     = 10 // Rows taken by title, tabs, stats and help
	boardDate       = "Jan 02 15:04"
)

// boardView selects what the scoreboard table lists.
type boardView int

const (
	viewTopScores boardView = iota
	viewRecentRuns
)

func (v boardView) title() string {
	if v == viewRecentRuns {
		return "RECENT RUNS"
	}
	return "HIGH SCORES"
}

func (v boardView) columns() []table.Column {
	if v == viewRecentRuns {
		return []table.Column{
			{Title: "Player", Width: 12},
			{Title: "Score", Width: 7},
			{Title: "Exits", Width: 6},
			{Title: "Crashes", Width: 8},
			{Title: "Streak", Width: 7},
			{Title: "Date", Width: 13},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 14},
	}
}

// boardKeys are the scoreboard key bindings, shown in its help bar.
type boardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	View   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.View, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Scroll, k.Next, k.Prev}, {k.View, k.Back, k.Quit}}
}

func newBoardKeys() boardKeys {
	return boardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑/↓", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev mode")),
		View:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "scores/runs")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = boardTabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardEmptyStyle = boardMutedStyle.Italic(true).Padding(2, 4)
)

// ScoreboardModel shows the top scores or the latest runs of each mode.
type ScoreboardModel struct {
	store  *storage.Store
	modes  []registry.GameInfo
	mode   int
	view   boardView
	scores []storage.Score
	runs   []storage.Run
	stats  storage.ModeStats
	table  table.Model
	help   help.Model
	keys   boardKeys
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the first mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		modes:  registry.List(),
		help:   help.New(),
		keys:   newBoardKeys(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.rebuild()
	m.load()
	return m
}

// current returns the selected mode, or a zero GameInfo when none exist.
func (m ScoreboardModel) current() registry.GameInfo {
	if len(m.modes) == 0 {
		return registry.GameInfo{}
	}
	return m.modes[m.mode]
}

// rebuild recreates the table for the current view and size.
func (m *ScoreboardModel) rebuild() {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	m.table = table.New(
		table.WithColumns(m.view.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-boardChrome, 3)),
		table.WithStyles(styles),
	)
	m.fill()
}

// load reads the selected mode's scores, runs and totals. Read errors
// leave the board empty.
func (m *ScoreboardModel) load() {
	m.scores, m.runs, m.stats = nil, nil, storage.ModeStats{}
	id := m.current().ID
	if m.store != nil && id != "" {
		m.scores, _ = m.store.TopScores(id, boardScoreLimit)
		m.runs, _ = m.store.RecentRuns(id, boardRunLimit)
		m.stats, _ = m.store.Stats(id)
	}
	m.fill()
}

// fill puts the loaded records into the table for the current view.
func (m *ScoreboardModel) fill() {
	var rows []table.Row
	if m.view == viewRecentRuns {
		for _, r := range m.runs {
			player := r.Player
			if player == "" {
				player = "-"
			}
			rows = append(rows, table.Row{
				player,
				strconv.Itoa(r.Score),
				strconv.Itoa(r.Exits),
				strconv.Itoa(r.Crashes),
				strconv.Itoa(r.BestStreak),
				r.CreatedAt.Format(boardDate),
			})
		}
	} else {
		for i, s := range m.scores {
			rows = append(rows, table.Row{"#" + strconv.Itoa(i+1), strconv.Itoa(s.Score), s.CreatedAt.Format(boardDate)})
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// step moves the mode selection by delta, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	if n := len(m.modes); n > 0 {
		m.mode = ((m.mode+delta)%n + n) % n
		m.load()
	}
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles keys and resizes.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		case key.Matches(msg, m.keys.View):
			m.view = 1 - m.view
			m.rebuild()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.rebuild()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := m.view.title()
	if mode := m.current(); mode.ID != "" {
		title += " - " + mode.Title
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(boardFrameStyle.Render(m.body()), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(boardMutedStyle.Render(m.summary()), m.width))
	b.WriteString("\n\n")
	b.WriteString(boardMutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders the mode selector. When every tab does not fit, only the
// selected mode is shown between arrows.
func (m ScoreboardModel) tabs() string {
	parts := make([]string, len(m.modes))
	for i, mode := range m.modes {
		style := boardTabStyle
		if i == m.mode {
			style = boardActiveTab
		}
		parts[i] = style.Render(mode.Title)
	}
	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.modes) > 0 {
		return boardActiveTab.Render("◀ " + m.current().Title + " ▶")
	}
	return line
}

func (m ScoreboardModel) body() string {
	empty := len(m.scores) == 0
	if m.view == viewRecentRuns {
		empty = len(m.runs) == 0
	}
	if empty {
		return boardEmptyStyle.Render("Nothing recorded yet.\nClear a few cars to set a high score!")
	}
	return m.table.View()
}

// summary is the one-line lifetime total under the table.
func (m ScoreboardModel) summary() string {
	if m.stats.Games == 0 {
		return ""
	}
	return fmt.Sprintf("%d games · best %d · avg %.1f · %d cars cleared · best streak %d",
		m.stats.Games, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalExits, m.stats.BestStreak)
}

// IsGoingBack reports whether the player asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard in its own program and reports
// whether the player went back to the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
