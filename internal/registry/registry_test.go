package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/shooter-arcade/internal/core"
)

type fakeGame struct{ id string }

func (g *fakeGame) ID() string                                           { return g.id }
func (g *fakeGame) Title() string                                        { return "Fake " + g.id }
func (g *fakeGame) Reset(core.RuntimeConfig)                             {}
func (g *fakeGame) Step(*core.InputState, time.Duration) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Draw(core.Canvas)                                     {}
func (g *fakeGame) Resize(float64, float64)                              {}
func (g *fakeGame) State() core.GameState                                { return core.GameState{} }

// registerFake registers a fake game once per process so -count=N works.
func registerFake(id string) {
	if !Exists(id) {
		Register(id, func() Game { return &fakeGame{id: id} })
	}
}

func TestRegisterAndCreate(t *testing.T) {
	registerFake("zz_fake")

	if !Exists("zz_fake") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_fake")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "zz_fake" {
		t.Errorf("ID = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_fake" {
			found = info.Title == "Fake zz_fake"
		}
	}
	if !found {
		t.Error("List should include the game with its title")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("missing"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("missing") {
		t.Error("unknown game should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	registerFake("zz_dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("zz_dup", func() Game { return &fakeGame{id: "zz_dup"} })
}

func TestListSorted(t *testing.T) {
	registerFake("zz_b")
	registerFake("zz_a")

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID > games[i].ID {
			t.Fatalf("List not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}
}
