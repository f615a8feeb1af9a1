package registry

import (
	"testing"

	"github.com/vovakirdan/tui-junction/internal/core"
)

type fakeGame struct{ id string }

func (g fakeGame) ID() string                           { return g.id }
func (g fakeGame) Title() string                        { return "Fake " + g.id }
func (g fakeGame) Reset(core.RuntimeConfig)             {}
func (g fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g fakeGame) Render(*core.Screen)                  {}
func (g fakeGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	r := New()
	r.Register("zz", func() Game { return fakeGame{id: "zz"} })
	r.Register("aa", func() Game { return fakeGame{id: "aa"} })

	if !r.Exists("zz") {
		t.Fatal("zz should be registered")
	}
	if r.Exists("missing") {
		t.Error("missing should not be registered")
	}

	g, err := r.Create("aa")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "aa" {
		t.Errorf("ID = %q", g.ID())
	}
	if _, err := r.Create("missing"); err == nil {
		t.Error("Create should fail for unknown IDs")
	}

	if got := r.Title("zz"); got != "Fake zz" {
		t.Errorf("Title = %q", got)
	}
	if got := r.Title("missing"); got != "missing" {
		t.Errorf("Title of unknown ID should echo it, got %q", got)
	}

	list := r.List()
	if len(list) != 2 || list[0].ID != "aa" || list[1].ID != "zz" {
		t.Errorf("List = %v, expected aa then zz", list)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	r := New()
	r.Register("dup", func() Game { return fakeGame{id: "dup"} })

	defer func() {
		if recover() == nil {
			t.Error("registering the same ID twice should panic")
		}
	}()
	r.Register("dup", func() Game { return fakeGame{id: "dup"} })
}

func TestDefaultRegistry(t *testing.T) {
	Register("default_test", func() Game { return fakeGame{id: "default_test"} })

	if !Exists("default_test") || !Default.Exists("default_test") {
		t.Fatal("package Register should add to Default")
	}
	if g, err := Create("default_test"); err != nil || g.ID() != "default_test" {
		t.Errorf("Create = %v, %v", g, err)
	}
	if Title("default_test") != "Fake default_test" {
		t.Errorf("Title = %q", Title("default_test"))
	}
	found := false
	for _, info := range List() {
		found = found || info.ID == "default_test"
	}
	if !found {
		t.Error("List should include default_test")
	}
}

type describedGame struct{ fakeGame }

func (describedGame) Description() string { return "a short blurb" }

func TestRegisterReadsDescription(t *testing.T) {
	r := New()
	r.Register("plain", func() Game { return fakeGame{id: "plain"} })
	r.Register("told", func() Game { return describedGame{fakeGame{id: "told"}} })

	about := make(map[string]string)
	for _, info := range r.List() {
		about[info.ID] = info.Description
	}
	if about["plain"] != "" {
		t.Errorf("plain description = %q, expected empty", about["plain"])
	}
	if about["told"] != "a short blurb" {
		t.Errorf("told description = %q", about["told"])
	}
}
