// Package touch lays out the on-screen control pad and tracks which
// buttons are under the active pointers. It knows nothing about the
// windowing library; the host feeds it pointer positions every frame.
package touch

import (
	"github.com/vovakirdan/shooter-arcade/internal/core"
)

const (
	margin  = 12.0
	minSize = 36.0
	maxSize = 64.0
)

// Point is a pointer position in world units.
type Point struct {
	X, Y float64
}

// Button is one on-screen control.
type Button struct {
	Action core.Action
	Label  string
	Rect   core.RectF
}

// Layout is the set of buttons for a play area.
type Layout struct {
	Buttons []Button
}

// NewLayout places a d-pad in the bottom-left corner, fire in the
// bottom-right corner and start in the top-right corner.
func NewLayout(w, h float64) Layout {
	s := core.ClampF(min(w, h)*0.12, minSize, maxSize)
	gap := s / 4

	padTop := h - margin - 3*s - 2*gap
	midY := padTop + s + gap
	fire := s * 1.5

	return Layout{Buttons: []Button{
		{Action: core.ActionUp, Label: "^", Rect: core.NewRectF(margin+s+gap, padTop, s, s)},
		{Action: core.ActionLeft, Label: "<", Rect: core.NewRectF(margin, midY, s, s)},
		{Action: core.ActionRight, Label: ">", Rect: core.NewRectF(margin+2*(s+gap), midY, s, s)},
		{Action: core.ActionDown, Label: "v", Rect: core.NewRectF(margin+s+gap, midY+s+gap, s, s)},
		{Action: core.ActionFire, Label: "FIRE", Rect: core.NewRectF(w-margin-fire, h-margin-fire, fire, fire)},
		{Action: core.ActionRestart, Label: "START", Rect: core.NewRectF(w-margin-2*s, margin+2*gap, 2*s, s*0.6)},
	}}
}

// Hit returns the button under (x, y).
func (l Layout) Hit(x, y float64) (Button, bool) {
	for _, b := range l.Buttons {
		if b.Rect.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

// Pad tracks button state across frames.
type Pad struct {
	layout  Layout
	down    map[core.Action]bool
	pressed map[core.Action]bool // went down this frame
}

// NewPad creates a pad for a w x h play area.
func NewPad(w, h float64) *Pad {
	return &Pad{
		layout:  NewLayout(w, h),
		down:    make(map[core.Action]bool),
		pressed: make(map[core.Action]bool),
	}
}

// Resize relays the buttons out for a new play area.
func (p *Pad) Resize(w, h float64) {
	p.layout = NewLayout(w, h)
}

// Layout returns the current button layout.
func (p *Pad) Layout() Layout {
	return p.layout
}

// Update records the buttons under points. Points that miss every button
// are returned so the host can treat them as plain pointer presses.
func (p *Pad) Update(points []Point) (misses []Point) {
	now := make(map[core.Action]bool, len(points))
	for _, pt := range points {
		b, ok := p.layout.Hit(pt.X, pt.Y)
		if !ok {
			misses = append(misses, pt)
			continue
		}
		now[b.Action] = true
	}

	clear(p.pressed)
	for a := range now {
		if !p.down[a] {
			p.pressed[a] = true
		}
	}
	p.down = now
	return misses
}

// Down reports whether a pointer is on the button for a.
func (p *Pad) Down(a core.Action) bool {
	return p.down[a]
}

// JustPressed reports whether the button for a went down this frame.
func (p *Pad) JustPressed(a core.Action) bool {
	return p.pressed[a]
}

// Apply feeds the pad into the input state the way pointer buttons behave:
// fire is a timed hold per tap, start triggers a restart, directions are
// reported through Down so the host can merge them with the keyboard.
func (p *Pad) Apply(in *core.InputState) {
	if p.JustPressed(core.ActionFire) {
		in.Hold(core.ActionFire, core.TouchFireHold)
	}
	if p.JustPressed(core.ActionRestart) {
		in.Trigger(core.ActionRestart)
	}
}
