package core

import (
	"testing"
	"time"
)

func TestInputStatePressRelease(t *testing.T) {
	in := NewInputState()

	in.Press(ActionLeft)
	if !in.Held(ActionLeft) {
		t.Fatal("pressed action should be held")
	}

	// Held survives steps until released
	in.Advance(time.Second)
	if !in.Held(ActionLeft) {
		t.Error("press without release should survive Advance")
	}

	in.Release(ActionLeft)
	if in.Held(ActionLeft) {
		t.Error("released action should not be held")
	}
}

func TestInputStateTimedHold(t *testing.T) {
	in := NewInputState()
	in.Hold(ActionFire, TouchFireHold)

	in.Advance(100 * time.Millisecond)
	if !in.Held(ActionFire) {
		t.Error("fire should still be held after 100ms")
	}

	in.Advance(100 * time.Millisecond)
	if in.Held(ActionFire) {
		t.Error("fire should auto-release after 160ms")
	}
}

func TestInputStateHoldExtends(t *testing.T) {
	in := NewInputState()
	in.Hold(ActionRight, 50*time.Millisecond)
	in.Hold(ActionRight, 200*time.Millisecond)
	in.Hold(ActionRight, 10*time.Millisecond) // must not shorten

	in.Advance(150 * time.Millisecond)
	if !in.Held(ActionRight) {
		t.Error("longest hold should win")
	}
}

func TestInputStateTriggerLastsOneStep(t *testing.T) {
	in := NewInputState()
	in.Trigger(ActionPause)

	if !in.Triggered(ActionPause) {
		t.Fatal("trigger should be visible before Advance")
	}
	if in.Held(ActionPause) {
		t.Error("trigger is not a hold")
	}

	in.Advance(0)
	if in.Triggered(ActionPause) {
		t.Error("trigger should be consumed by Advance")
	}
}

func TestInputStateReleaseAll(t *testing.T) {
	in := NewInputState()
	in.Press(ActionUp)
	in.Hold(ActionFire, time.Second)
	in.Trigger(ActionRestart)

	in.ReleaseAll()

	for _, a := range []Action{ActionUp, ActionFire} {
		if in.Held(a) {
			t.Errorf("%s should be released", a)
		}
	}
	if in.Triggered(ActionRestart) {
		t.Error("triggers should be dropped")
	}
}

func TestInputStateAxis(t *testing.T) {
	tests := []struct {
		name     string
		held     []Action
		expected float64
	}{
		{"none", nil, 0},
		{"left", []Action{ActionLeft}, -1},
		{"right", []Action{ActionRight}, 1},
		{"both cancel", []Action{ActionLeft, ActionRight}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := NewInputState()
			for _, a := range tc.held {
				in.Press(a)
			}
			if got := in.Axis(ActionLeft, ActionRight); got != tc.expected {
				t.Errorf("Axis() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestNilInputState(t *testing.T) {
	var in *InputState
	if in.Held(ActionFire) || in.Triggered(ActionPause) {
		t.Error("nil input state should report nothing")
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
