package touch

import (
	"testing"
	"time"

	"github.com/vovakirdan/shooter-arcade/internal/core"
)

func TestLayoutInsidePlayArea(t *testing.T) {
	sizes := [][2]float64{{640, 368}, {320, 480}, {1920, 1080}, {200, 200}}

	for _, sz := range sizes {
		l := NewLayout(sz[0], sz[1])
		if len(l.Buttons) != 6 {
			t.Fatalf("expected 6 buttons, got %d", len(l.Buttons))
		}
		for _, b := range l.Buttons {
			r := b.Rect
			if r.X < 0 || r.Y < 0 || r.Right() > sz[0] || r.Bottom() > sz[1] {
				t.Errorf("%vx%v: %s button %+v outside play area", sz[0], sz[1], b.Action, r)
			}
		}
	}
}

func TestLayoutButtonsDoNotOverlap(t *testing.T) {
	l := NewLayout(640, 368)
	for i, a := range l.Buttons {
		for _, b := range l.Buttons[i+1:] {
			if a.Rect.Intersects(b.Rect) {
				t.Errorf("%s overlaps %s", a.Action, b.Action)
			}
		}
	}
}

func TestLayoutHit(t *testing.T) {
	l := NewLayout(640, 368)
	for _, b := range l.Buttons {
		cx, cy := b.Rect.Center()
		got, ok := l.Hit(cx, cy)
		if !ok || got.Action != b.Action {
			t.Errorf("Hit at %s center = %v, %v", b.Action, got.Action, ok)
		}
	}

	if _, ok := l.Hit(320, 100); ok {
		t.Error("center of the play area should not hit a button")
	}
}

func center(l Layout, a core.Action) Point {
	for _, b := range l.Buttons {
		if b.Action == a {
			x, y := b.Rect.Center()
			return Point{x, y}
		}
	}
	return Point{}
}

func TestPadEdges(t *testing.T) {
	p := NewPad(640, 368)
	left := center(p.Layout(), core.ActionLeft)

	p.Update([]Point{left})
	if !p.Down(core.ActionLeft) || !p.JustPressed(core.ActionLeft) {
		t.Fatal("left should go down")
	}

	p.Update([]Point{left})
	if !p.Down(core.ActionLeft) || p.JustPressed(core.ActionLeft) {
		t.Error("held left should not press again")
	}

	p.Update(nil)
	if p.Down(core.ActionLeft) {
		t.Error("left should be up once the pointer lifts")
	}
}

func TestPadMisses(t *testing.T) {
	p := NewPad(640, 368)
	misses := p.Update([]Point{{320, 100}, center(p.Layout(), core.ActionFire)})
	if len(misses) != 1 || misses[0] != (Point{320, 100}) {
		t.Errorf("misses = %v", misses)
	}
}

func TestPadApplyFireTap(t *testing.T) {
	p := NewPad(640, 368)
	in := core.NewInputState()
	fire := center(p.Layout(), core.ActionFire)

	p.Update([]Point{fire})
	p.Apply(in)
	if !in.Held(core.ActionFire) {
		t.Fatal("tap should hold fire")
	}

	// Fire stays held for the tap window even after the finger lifts
	p.Update(nil)
	p.Apply(in)
	in.Advance(100 * time.Millisecond)
	if !in.Held(core.ActionFire) {
		t.Error("fire released before the tap window")
	}
	in.Advance(100 * time.Millisecond)
	if in.Held(core.ActionFire) {
		t.Error("fire should release after the tap window")
	}
}

func TestPadApplyStartTriggersRestart(t *testing.T) {
	p := NewPad(640, 368)
	in := core.NewInputState()

	p.Update([]Point{center(p.Layout(), core.ActionRestart)})
	p.Apply(in)
	if !in.Triggered(core.ActionRestart) {
		t.Error("start should trigger a restart")
	}

	in.Advance(time.Millisecond)
	p.Update([]Point{center(p.Layout(), core.ActionRestart)})
	p.Apply(in)
	if in.Triggered(core.ActionRestart) {
		t.Error("holding start should not restart again")
	}
}
