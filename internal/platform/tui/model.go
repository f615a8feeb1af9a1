package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-junction/internal/core"
	"github.com/vovakirdan/tui-junction/internal/games/junction"
	"github.com/vovakirdan/tui-junction/internal/registry"
	"github.com/vovakirdan/tui-junction/internal/storage"
)

// snapshotter is implemented by games that expose run statistics.
type snapshotter interface {
	Snapshot() junction.Snapshot
}

// Model runs one game: it feeds key presses to the simulation on each tick,
// logs what happened and records the run when it ends.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	palette    Palette
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	keyMapper  *KeyMapper
	loop       uint64 // Tick loop this model accepts
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been recorded
}

// NewModel wraps game for play. A zero seed is replaced with the current
// time, and a nil logger discards game events.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = DiscardLogger()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		palette:    NewPalette(nil),
		store:      store,
		logger:     logger,
		config:     cfg,
		player:     player,
		keyMapper:  NewKeyMapper(),
		loop:       nextLoop(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game ready", "game", m.game.ID(), "player", m.player, "seed", m.config.Seed)
	return tickCmd(m.loop, m.config.TickRate)
}

// Update routes keys, resizes and ticks from this model's loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		if msg.Loop == m.loop {
			return m.handleTick()
		}
	}
	return m, nil
}

// handleKey records the key's action for the next tick. Quit and back are
// handled at once, since they end the program.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game only when nothing is in motion
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused || !m.gameState.Started) {
		m.saveRun()
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize resizes the screen buffer. The world is scaled into the
// screen on every frame, so the run carries on at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick steps the game with the input gathered since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logEvent(ev)
	}

	// A restart from the game over screen begins a new run
	if wasOver && !m.gameState.GameOver {
		m.runSaved = false
	}

	if m.gameState.GameOver {
		m.saveRun()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.loop, m.config.TickRate)
}

// logEvent writes a game event to the event log. Spawns are frequent and
// go to debug level.
func (m *Model) logEvent(ev core.Event) {
	kv := append([]any{"game", m.game.ID()}, ev.KeyVals()...)
	if ev.Kind == "spawn" {
		m.logger.Debug(ev.Kind, kv...)
		return
	}
	m.logger.Info(ev.Kind, kv...)
}

// saveRun records the score and run summary once per run. Runs that never
// started are not recorded. Failures are logged and play continues.
func (m *Model) saveRun() {
	if m.runSaved || !m.gameState.Started {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}

	run := storage.Run{
		GameID: m.game.ID(),
		Player: m.player,
		Score:  m.gameState.Score,
	}
	if s, ok := m.game.(snapshotter); ok {
		snap := s.Snapshot()
		run.Exits = snap.Exits
		run.Crashes = snap.Crashes
		run.BestStreak = snap.BestStreak
		run.Ticks = int(snap.Tick)
	}

	if run.Score > 0 {
		if _, err := m.store.SaveScore(run.GameID, run.Score); err != nil {
			m.logger.Error("cannot save score", "game", run.GameID, "error", err)
		}
	}

	saved, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Error("cannot save run", "game", run.GameID, "error", err)
		return
	}
	m.logger.Info("run saved",
		"run", saved.RunID,
		"game", saved.GameID,
		"player", saved.Player,
		"score", saved.Score,
		"exits", saved.Exits,
		"crashes", saved.Crashes,
	)
}

// saveScreenshot writes the current frame to the screenshot directory.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := screenshotDir()
	if err == nil {
		var path string
		if path, err = writeScreenshot(dir, m.game.ID(), m.screen, time.Now()); err == nil {
			m.logger.Info("screenshot saved", "path", path)
			return
		}
	}
	m.logger.Warn("cannot save screenshot", "error", err)
}

// View draws the game and styles it for the terminal.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)

	return m.palette.Render(m.screen)
}

// WithPalette returns a copy of the model that renders with p.
func (m Model) WithPalette(p Palette) Model {
	m.palette = p
	return m
}

// IsQuitting reports whether the player quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run plays game in its own program and reports whether the player asked
// for the menu rather than quitting.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) (backToMenu bool, err error) {
	final, err := tea.NewProgram(NewModel(game, store, cfg, player, logger), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
