package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shooter-arcade/internal/core"
	"github.com/vovakirdan/shooter-arcade/internal/storage"
)

// stubGame records platform calls and replays queued events.
type stubGame struct {
	resets   int
	steps    int
	lastDT   time.Duration
	sawFire  bool
	w, h     float64
	state    core.GameState
	pending  []core.Event
	drawn    int
	lastSize [2]float64
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.w, g.h = cfg.Width, cfg.Height
}

func (g *stubGame) Step(in *core.InputState, dt time.Duration) core.StepResult {
	g.steps++
	g.lastDT = dt
	g.sawFire = in.Held(core.ActionFire)
	events := g.pending
	g.pending = nil
	return core.StepResult{State: g.state, Events: events}
}

func (g *stubGame) Draw(dst core.Canvas) {
	g.drawn++
	w, h := dst.Size()
	g.lastSize = [2]float64{w, h}
	dst.Clear(core.Style{Color: core.ColorSpace, Glyph: '.'})
}

func (g *stubGame) Resize(w, h float64) {
	g.w, g.h = w, h
}

func (g *stubGame) State() core.GameState {
	return g.state
}

func newTestModel(g *stubGame, store *storage.Store) Model {
	m := NewModel(g, Options{
		Runtime: core.RuntimeConfig{TickRate: 60, Seed: 7},
		Cols:    40,
		Rows:    12,
		Store:   store,
	})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelPlayAreaExcludesHUDAndHelp(t *testing.T) {
	g := &stubGame{}
	newTestModel(g, nil)

	if g.resets != 1 {
		t.Fatalf("Init should reset the game once, got %d", g.resets)
	}
	// 40x12 terminal: one HUD row and one help row leave 40x10 cells
	if g.w != 320 || g.h != 160 {
		t.Errorf("play area = %vx%v, expected 320x160", g.w, g.h)
	}
}

func TestModelTickStepsWithClampedDelta(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m, cmd := update(t, m, TickMsg(start))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if g.lastDT != 0 {
		t.Errorf("first tick dt = %v, expected 0", g.lastDT)
	}

	update(t, m, TickMsg(start.Add(2*time.Second)))
	if g.lastDT != core.MaxFrameDelta {
		t.Errorf("stalled tick dt = %v, expected %v", g.lastDT, core.MaxFrameDelta)
	}
	if g.steps != 2 {
		t.Errorf("expected 2 steps, got %d", g.steps)
	}
}

func TestModelKeyReachesStep(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	update(t, m, TickMsg(time.Now()))

	if !g.sawFire {
		t.Error("fire press should be visible to Step")
	}
}

func TestModelBlurReleasesInput(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, tea.BlurMsg{})
	update(t, m, TickMsg(time.Now()))

	if g.sawFire {
		t.Error("focus loss should release held actions")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	if g.resets != 1 {
		t.Error("resize should not reset the run")
	}
	if g.w != 480 || g.h != 288 {
		t.Errorf("resized play area = %vx%v, expected 480x288", g.w, g.h)
	}
}

func TestModelGameOverSavesRun(t *testing.T) {
	g := &stubGame{}
	store := storage.NewStore()
	m := newTestModel(g, store)

	g.pending = []core.Event{{Kind: core.EventGameOver, Score: 450, Elapsed: 12.5}}
	m, _ = update(t, m, TickMsg(time.Now()))
	update(t, m, TickMsg(time.Now()))

	runs := store.Recent(0)
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	if runs[0].GameID != "stub" || runs[0].Score != 450 {
		t.Errorf("unexpected run %+v", runs[0])
	}
	if runs[0].Duration != 12500*time.Millisecond {
		t.Errorf("duration = %v", runs[0].Duration)
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m := newTestModel(&stubGame{}, nil)
	back, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.back || cmd == nil {
		t.Error("esc should leave the game for the menu")
	}
	if back.View() != "" {
		t.Error("view should be empty after leaving")
	}

	m = newTestModel(&stubGame{}, nil)
	quit, cmd := update(t, m, runeKey('q'))
	if !quit.quitting || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelViewDrawsGameAndHUD(t *testing.T) {
	g := &stubGame{state: core.GameState{Score: 99, Lives: 1}}
	m := newTestModel(g, nil)

	view := m.View()
	if g.drawn != 1 {
		t.Errorf("Draw called %d times", g.drawn)
	}
	if g.lastSize != [2]float64{320, 160} {
		t.Errorf("canvas size = %v", g.lastSize)
	}
	for _, want := range []string{"Stub", "Score: 99", "Lives: 1", "..."} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
