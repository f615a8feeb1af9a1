// Package registry maps mode IDs to game constructors.
// Modes add themselves to Default from init functions, and the CLI and the
// terminal platform look them up by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-junction/internal/core"
)

// Game is the interface every playable mode implements.
// Games hold pure simulation logic with no Bubble Tea dependency; the
// platform owns input mapping, timing and drawing to the terminal.
type Game interface {
	// ID is the mode identifier used on the command line and in score storage.
	ID() string

	// Title is the display name.
	Title() string

	// Reset prepares a new run for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick and reports the
	// resulting state and the events the tick produced.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current score and run flags.
	State() core.GameState
}

// Describer is implemented by games that carry a one-line summary.
type Describer interface {
	Description() string
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	title string
	about string
	make  Factory
}

// Registry is a set of modes keyed by ID. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	modes map[string]entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{modes: make(map[string]entry)}
}

// Default is the registry modes join from their init functions.
var Default = New()

// Register adds a mode. The title and description are read from one
// throwaway instance. Registering an ID twice panics.
func (r *Registry) Register(id string, f Factory) {
	g := f()
	e := entry{title: g.Title(), make: f}
	if d, ok := g.(Describer); ok {
		e.about = d.Description()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.modes[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	r.modes[id] = e
}

// List returns every mode sorted by ID.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]GameInfo, 0, len(r.modes))
	for id, e := range r.modes {
		out = append(out, GameInfo{ID: id, Title: e.title, Description: e.about})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create builds a new instance of the mode with the given ID.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	e, ok := r.modes[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.make(), nil
}

// Title returns the display name of a mode, or id itself when unknown.
func (r *Registry) Title(id string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.modes[id]; ok {
		return e.title
	}
	return id
}

// Exists reports whether id is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.modes[id]
	return ok
}

// Register adds a mode to Default.
func Register(id string, f Factory) { Default.Register(id, f) }

// List returns the modes in Default.
func List() []GameInfo { return Default.List() }

// Create builds a mode from Default.
func Create(id string) (Game, error) { return Default.Create(id) }

// Title returns a display name from Default.
func Title(id string) string { return Default.Title(id) }

// Exists reports whether Default has id.
func Exists(id string) bool { return Default.Exists(id) }
