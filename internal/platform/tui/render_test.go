package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/shooter-arcade/internal/core"
)

func TestDrawHUD(t *testing.T) {
	s := core.NewScreen(80, 3)
	s.SetCell(0, 0, 'x', core.ColorRed)

	DrawHUD(s, "River Run", core.GameState{
		Score:  150,
		Lives:  2,
		Paused: true,
		Meters: []core.Meter{{Label: "Fuel", Value: "83%"}},
	})

	row := s.Row(0)
	for _, want := range []string{"River Run", "Score: 150", "Lives: 2", "Fuel: 83%", "PAUSED"} {
		if !strings.Contains(row, want) {
			t.Errorf("HUD %q missing %q", row, want)
		}
	}
	if s.Get(0, 0) != ' ' {
		t.Error("HUD row should be cleared first")
	}
}

func TestDrawHUDOmitsPausedWhilePlaying(t *testing.T) {
	s := core.NewScreen(80, 1)
	DrawHUD(s, "Invaders", core.GameState{Score: 30, Lives: 3})

	if strings.Contains(s.Row(0), "PAUSED") {
		t.Error("PAUSED should only show while paused")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "ab", core.ColorGreen)
	s.DrawText(2, 0, "cd", core.ColorRed)
	s.DrawText(0, 1, "ef", core.ColorSpace)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") || !strings.Contains(out, "ef") {
		t.Errorf("rendered screen lost text: %q", out)
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorPanel; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
