// Package junction implements a four-way intersection traffic game.
// Vehicles spawn on four approach lanes and follow fixed paths through the
// junction; the player flips traffic lights to keep them moving without
// crashes. Exits score points, crashes cost them.
package junction

import (
	"math/rand"

	"github.com/vovakirdan/tui-junction/internal/config"
	"github.com/vovakirdan/tui-junction/internal/core"
	"github.com/vovakirdan/tui-junction/internal/paths"
	"github.com/vovakirdan/tui-junction/internal/registry"
)

// Mode selects how difficulty evolves.
type Mode string

const (
	ModeClassic Mode = "junction"      // Difficulty follows the score
	ModeRush    Mode = "junction_rush" // Starts hard, ramps with time
)

// rushRampTicks is how long rush mode takes to reach full difficulty (3 min at 60 FPS).
const rushRampTicks = 3 * 60 * 60

// Package-level settings applied on the next Reset (like the CLI flags).
var (
	configPath       string
	pathsPath        string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom junction.yaml path.
func SetConfigPath(path string) {
	configPath = path
}

// SetPathsPath sets a custom paths.yaml path.
func SetPathsPath(path string) {
	pathsPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// Game implements the intersection game.
type Game struct {
	mode   Mode
	cfg    config.JunctionConfig
	table  paths.Table
	pinned bool                    // Config supplied by the caller; Reset keeps it
	preset config.DifficultyPreset // Overrides the package preset when set

	runtime    core.RuntimeConfig
	rng        *rand.Rand
	ramp       config.Ramp
	traffic    *Traffic
	lights     *Lights
	crash      *CrashSequencer
	score      *Scoreboard

	tick        uint64
	tickMs      float64
	nextSpawnAt float64 // Game clock, ms
	lightCycle  int     // Automatic light period in ticks, 0 for manual

	started   bool
	paused    bool
	gameOver  bool
	holdUntil float64 // Milestone banner holds the simulation until this time
	quip      string

	events []core.Event
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewRush creates a rush mode game.
func NewRush() *Game {
	return &Game{mode: ModeRush}
}

// NewWithConfig creates a game with explicit tuning and geometry. Reset will
// not reload configuration files.
func NewWithConfig(mode Mode, cfg config.JunctionConfig, table paths.Table) *Game {
	return &Game{mode: mode, cfg: cfg, table: table, pinned: true}
}

func init() {
	registry.Register(string(ModeClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeRush), func() registry.Game {
		return NewRush()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeRush {
		return "Junction (Rush Hour)"
	}
	return "Junction"
}

// Description is the one-line summary shown by the mode listing.
func (g *Game) Description() string {
	if g.mode == ModeRush {
		return "Starts busy and speeds up every minute"
	}
	return "Traffic picks up as your score climbs"
}

// Reset initializes or restarts the game. The game waits on its start screen
// until the player confirms.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	if !g.pinned {
		g.loadConfig()
	}

	diffCfg := g.cfg.Difficulty
	if g.mode == ModeRush && g.activePreset() == "" {
		diffCfg.Enabled = true
		diffCfg.InitialLevel = config.InitialLevelForPreset(config.DifficultyHard)
		diffCfg.Progression = config.ProgressionConfig{Type: "time", MaxAt: rushRampTicks}
	}
	g.ramp = config.NewRamp(diffCfg)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	if g.traffic == nil {
		g.traffic = NewTraffic(&g.cfg, g.table, g.rng)
	} else {
		g.traffic.table = g.table
		g.traffic.Reset(g.rng)
	}
	g.lights = NewLights()
	g.crash = NewCrashSequencer(g.cfg.Crash)
	g.score = NewScoreboard(g.cfg.Scoring)

	g.tick = 0
	g.tickMs = cfg.TickMillis()
	g.nextSpawnAt = float64(g.spawnInterval())
	g.started = false
	g.paused = false
	g.gameOver = false
	g.holdUntil = 0
	g.quip = ""
	g.events = g.events[:0]
}

// loadConfig reads tuning and geometry, falling back to built-in defaults.
// The CLI validates explicit files before play starts.
func (g *Game) loadConfig() {
	cfg, err := config.LoadJunction(configPath)
	if err != nil {
		cfg = config.DefaultJunctionConfig()
	}
	config.ApplyPreset(&cfg, g.activePreset())
	g.cfg = cfg

	table, err := config.LoadPaths(pathsPath)
	if err != nil {
		table = config.DefaultPathTable()
	}
	g.table = table
}

// SetPreset picks the difficulty preset for this game only, taking effect on
// the next Reset. SSH sessions use it instead of the package-level setting.
func (g *Game) SetPreset(preset config.DifficultyPreset) {
	g.preset = preset
}

func (g *Game) activePreset() config.DifficultyPreset {
	if g.preset != "" {
		return g.preset
	}
	return difficultyPreset
}

// Start leaves the start screen.
func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true
	g.emit("start", map[string]any{"mode": string(g.mode)})
}

// SetLightCycle makes the lights alternate automatically every period ticks.
// Zero returns them to manual control.
func (g *Game) SetLightCycle(period int) {
	g.lightCycle = max(period, 0)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return g.result()
	}

	if !g.started {
		if in.Has(core.ActionConfirm) {
			g.Start()
		}
		return g.result()
	}

	g.handleLightInput(in)

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.emit("pause", map[string]any{"paused": g.paused})
	}
	if g.paused {
		return g.result()
	}

	g.tick++
	now := g.Now()

	if now < g.holdUntil {
		return g.result()
	}

	if g.lightCycle > 0 && g.lights.Cycle(g.tick, g.lightCycle) {
		g.emit("cycle", g.lightFields())
	}

	g.spawn(now)
	g.update(now)

	return g.result()
}

// restart begins a fresh run straight away, skipping the start screen.
func (g *Game) restart() {
	next := g.runtime
	next.Seed = g.rng.Int63()
	g.Reset(next)
	g.Start()
}

func (g *Game) handleLightInput(in core.InputFrame) {
	toggles := []struct {
		action core.Action
		light  paths.Lane
	}{
		{core.ActionToggleNorth, paths.North},
		{core.ActionToggleSouth, paths.South},
		{core.ActionToggleEast, paths.East},
		{core.ActionToggleWest, paths.West},
	}
	for _, t := range toggles {
		if in.Has(t.action) {
			s := g.lights.Toggle(t.light)
			g.emit("light", map[string]any{"light": t.light.String(), "signal": s.String()})
		}
	}
	if in.Has(core.ActionToggleAll) {
		g.lights.ToggleAll()
		g.emit("light", g.lightFields())
	}
}

// spawn runs the spawn timer.
func (g *Game) spawn(now float64) {
	if now < g.nextSpawnAt {
		return
	}
	g.nextSpawnAt = now + float64(g.spawnInterval())

	p := g.pressure()
	if g.rng.Float64() >= p.SpawnChance {
		return
	}

	v, res := g.traffic.TrySpawn(now, func(base float64) float64 {
		return base * p.SpeedScale
	})
	if res != Spawned {
		return
	}
	g.emit("spawn", map[string]any{
		"id":    v.ID,
		"lane":  v.Lane.String(),
		"path":  v.Path.Name,
		"speed": v.BaseSpeed,
	})
}

func (g *Game) spawnInterval() int {
	return g.pressure().SpawnIntervalMs
}

func (g *Game) pressure() config.Pressure {
	return g.ramp.At(g.score.Score(), int(g.tick), g.cfg.Spawn)
}

// update runs one motion tick: collisions, the crash timeline, then traffic.
func (g *Game) update(now float64) {
	if !g.crash.Active() {
		if c, ok := g.traffic.DetectCollision(); ok {
			g.crash.Trigger(now, c.A, c.B)
			over, milestone := g.score.Crash(g.cfg.Crash.Penalty)
			g.emit("crash", map[string]any{
				"a":       c.A.ID,
				"b":       c.B.ID,
				"overlap": c.Overlap,
				"score":   g.score.Score(),
			})
			if milestone {
				g.milestone(now)
			}
			if over {
				g.endGame()
				return
			}
		}
	}

	if cleared := g.crash.Update(now); len(cleared) > 0 {
		g.traffic.Remove(cleared...)
		g.emit("crash_cleared", map[string]any{"vehicles": len(cleared)})
	}
	if g.crash.UpdateRecovery(now) {
		g.emit("recovered", nil)
	}

	if g.crash.Active() {
		g.traffic.Freeze()
		return
	}

	for _, v := range g.traffic.Advance(g.lights) {
		if v.Crashed {
			continue
		}
		award := g.score.Exit(now)
		g.emit("exit", map[string]any{
			"id":     v.ID,
			"lane":   v.Lane.String(),
			"points": award.Points,
			"streak": award.Streak,
			"score":  g.score.Score(),
		})
		if award.Milestone {
			g.milestone(now)
		}
	}
}

func (g *Game) milestone(now float64) {
	g.holdUntil = now + float64(g.cfg.Scoring.MilestoneHoldMs)
	g.emit("milestone", map[string]any{"score": g.score.Score()})
}

func (g *Game) endGame() {
	g.gameOver = true
	g.quip = pickQuip(g.rng)
	g.emit("game_over", map[string]any{
		"score":       g.score.Score(),
		"exits":       g.score.Exits(),
		"crashes":     g.score.Crashes(),
		"best_streak": g.score.BestStreak(),
	})
}

func (g *Game) emit(kind string, fields map[string]any) {
	g.events = append(g.events, core.Event{Kind: kind, Tick: g.tick, Fields: fields})
}

func (g *Game) lightFields() map[string]any {
	fields := make(map[string]any, len(paths.AllLanes))
	for _, l := range paths.AllLanes {
		fields[l.String()] = g.lights.State(l).String()
	}
	return fields
}

func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = make([]core.Event, len(g.events))
		copy(events, g.events)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.score == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.score.Score(),
		GameOver: g.gameOver,
		Paused:   g.paused,
		Started:  g.started,
	}
}

// Now returns the game clock in milliseconds. It only advances while playing.
func (g *Game) Now() float64 {
	return float64(g.tick) * g.tickMs
}

// Traffic exposes the vehicles on the map.
func (g *Game) Traffic() *Traffic {
	return g.traffic
}

// Lights exposes the traffic lights.
func (g *Game) Lights() *Lights {
	return g.lights
}

// Config returns the active tuning.
func (g *Game) Config() config.JunctionConfig {
	return g.cfg
}

// Quip returns the game over line, empty while the game is running.
func (g *Game) Quip() string {
	return g.quip
}
