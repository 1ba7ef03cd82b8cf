package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shooter-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMapMapKey(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", runeKey('s'), core.ActionDown},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"b", runeKey('b'), core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
		{"screenshot", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestApplyHoldsMovementForWindow(t *testing.T) {
	keys := DefaultGameKeyMap()
	in := core.NewInputState()

	keys.Apply(tea.KeyMsg{Type: tea.KeyLeft}, in)
	if !in.Held(core.ActionLeft) {
		t.Fatal("left should be held after a key press")
	}

	// Typical OS auto-repeat delays are 250-500ms
	in.Advance(500 * time.Millisecond)
	if !in.Held(core.ActionLeft) {
		t.Error("left should still be held until the first repeat arrives")
	}

	in.Advance(KeyInitialHold)
	if in.Held(core.ActionLeft) {
		t.Error("left should be released after the initial hold")
	}
}

func TestApplyRepeatExtendsHold(t *testing.T) {
	keys := DefaultGameKeyMap()
	in := core.NewInputState()

	keys.Apply(runeKey(' '), in)
	in.Advance(500 * time.Millisecond)

	// Auto-repeat every 33ms for half a second
	for range 15 {
		keys.Apply(runeKey(' '), in)
		in.Advance(33 * time.Millisecond)
		if !in.Held(core.ActionFire) {
			t.Fatal("fire should stay held while the key repeats")
		}
	}
}

func TestApplyRepeatReleasesSoonAfterKeyUp(t *testing.T) {
	keys := DefaultGameKeyMap()
	in := core.NewInputState()

	keys.Apply(tea.KeyMsg{Type: tea.KeyRight}, in)
	in.Advance(500 * time.Millisecond)
	keys.Apply(tea.KeyMsg{Type: tea.KeyRight}, in) // repeat

	// No more repeats: the key was let go
	in.Advance(KeyRepeatHold + 10*time.Millisecond)
	if in.Held(core.ActionRight) {
		t.Error("right should stop within the repeat hold after the last repeat")
	}
}

func TestApplyOppositeDirectionReleases(t *testing.T) {
	keys := DefaultGameKeyMap()
	in := core.NewInputState()

	keys.Apply(tea.KeyMsg{Type: tea.KeyLeft}, in)
	keys.Apply(tea.KeyMsg{Type: tea.KeyRight}, in)

	if in.Held(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !in.Held(core.ActionRight) {
		t.Error("right should be held")
	}
	if got := in.Axis(core.ActionLeft, core.ActionRight); got != 1 {
		t.Errorf("Axis = %v, expected 1", got)
	}
}

func TestApplyTriggersOneShots(t *testing.T) {
	keys := DefaultGameKeyMap()
	in := core.NewInputState()

	if got := keys.Apply(runeKey('p'), in); got != core.ActionPause {
		t.Fatalf("Apply returned %v", got)
	}
	if !in.Triggered(core.ActionPause) {
		t.Fatal("pause should be triggered")
	}
	if in.Held(core.ActionPause) {
		t.Error("pause should not be held")
	}

	in.Advance(time.Millisecond)
	if in.Triggered(core.ActionPause) {
		t.Error("trigger should be consumed by Advance")
	}
}

func TestMenuKeyMap(t *testing.T) {
	keys := DefaultMenuKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionHistory},
		{runeKey('q'), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := keys.MapKey(tt.msg); got != tt.want {
			t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}
