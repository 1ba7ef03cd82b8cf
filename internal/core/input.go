package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow, touch left
	ActionRight          // D, Right arrow, touch right
	ActionUp             // W, Up arrow, touch up
	ActionDown           // S, Down arrow, touch down
	ActionFire           // Space, mouse, touch fire
	ActionPause          // P - pause/unpause game
	ActionRestart        // R, start button - reset the run
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// TouchFireHold is how long a tap on the fire button keeps fire held.
const TouchFireHold = 160 * time.Millisecond

// InputState is the explicit input snapshot passed into Game.Step.
//
// Held actions stay set until released or, for timed holds, until their
// hold expires. Triggered actions are visible for exactly one step.
// All mutation happens on the platform's frame loop, so no locking.
type InputState struct {
	held      map[Action]bool
	timed     map[Action]time.Duration // remaining hold for timed presses
	triggered map[Action]bool
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{
		held:      make(map[Action]bool),
		timed:     make(map[Action]time.Duration),
		triggered: make(map[Action]bool),
	}
}

// Press marks an action as held until Release (key-down).
func (s *InputState) Press(a Action) {
	s.held[a] = true
}

// Release clears a held action (key-up).
func (s *InputState) Release(a Action) {
	delete(s.held, a)
	delete(s.timed, a)
}

// Hold keeps an action held for d. Repeated holds extend, never shorten.
// Used by hosts that report key presses without releases.
func (s *InputState) Hold(a Action, d time.Duration) {
	if d > s.timed[a] {
		s.timed[a] = d
	}
}

// Trigger marks a one-shot action for the next step.
func (s *InputState) Trigger(a Action) {
	s.triggered[a] = true
}

// ReleaseAll drops every held and triggered action (focus loss).
func (s *InputState) ReleaseAll() {
	clear(s.held)
	clear(s.timed)
	clear(s.triggered)
}

// Held reports whether an action is currently held.
func (s *InputState) Held(a Action) bool {
	if s == nil {
		return false
	}
	return s.held[a] || s.timed[a] > 0
}

// Triggered reports whether a one-shot action fired this step.
func (s *InputState) Triggered(a Action) bool {
	if s == nil {
		return false
	}
	return s.triggered[a]
}

// Advance ends a step: timed holds age by dt and triggers are consumed.
func (s *InputState) Advance(dt time.Duration) {
	for a, left := range s.timed {
		left -= dt
		if left <= 0 {
			delete(s.timed, a)
			continue
		}
		s.timed[a] = left
	}
	clear(s.triggered)
}

// Axis returns -1, 0 or +1 for a pair of opposing held actions.
func (s *InputState) Axis(neg, pos Action) float64 {
	v := 0.0
	if s.Held(neg) {
		v--
	}
	if s.Held(pos) {
		v++
	}
	return v
}
