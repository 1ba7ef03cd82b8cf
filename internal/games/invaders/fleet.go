package invaders

import (
	"math"

	"github.com/vovakirdan/shooter-arcade/internal/config"
)

// Fleet is the marching grid of invaders.
type Fleet struct {
	Invaders []*Invader
	Dir      float64 // +1 marching right, -1 marching left
	total    int
	cfg      config.InvadersFleet
}

// kindForRow maps a grid row to an invader kind: the top row is worth
// the most, the next two rows less, the rest least.
func kindForRow(row int) int {
	switch {
	case row == 0:
		return 2
	case row <= 2:
		return 1
	default:
		return 0
	}
}

// NewFleet builds a fleet centered in width, drop units below the
// configured top. Columns are reduced until the grid fits between the
// margins.
func NewFleet(cfg config.InvadersFleet, width, margin, drop float64) *Fleet {
	cols := cfg.Cols
	if fit := int(math.Floor((width-2*margin-cfg.InvaderWidth)/cfg.SpacingX)) + 1; fit < cols {
		cols = max(1, fit)
	}

	gridW := float64(cols-1)*cfg.SpacingX + cfg.InvaderWidth
	left := (width - gridW) / 2

	f := &Fleet{
		Invaders: make([]*Invader, 0, cfg.Rows*cols),
		Dir:      1,
		cfg:      cfg,
	}
	for row := range cfg.Rows {
		for col := range cols {
			f.Invaders = append(f.Invaders, &Invader{
				X:    left + float64(col)*cfg.SpacingX,
				Y:    cfg.Top + drop + float64(row)*cfg.SpacingY,
				W:    cfg.InvaderWidth,
				H:    cfg.InvaderHeight,
				Row:  row,
				Col:  col,
				Kind: kindForRow(row),
			})
		}
	}
	f.total = len(f.Invaders)
	return f
}

// Alive returns the number of live invaders.
func (f *Fleet) Alive() int {
	n := 0
	for _, v := range f.Invaders {
		if !v.Dead {
			n++
		}
	}
	return n
}

// Empty reports whether every invader is gone.
func (f *Fleet) Empty() bool {
	return f.Alive() == 0
}

// ThinFactor returns the march multiplier for the current fleet size:
// 1 for a full fleet, 1 + thin_speedup with one invader left.
func (f *Fleet) ThinFactor() float64 {
	if f.total <= 1 {
		return 1
	}
	alive := f.Alive()
	if alive == 0 {
		return 1
	}
	gone := float64(f.total-alive) / float64(f.total-1)
	return 1 + f.cfg.ThinSpeedup*gone
}

// Bounds returns the horizontal extent and bottom edge of the live fleet.
func (f *Fleet) Bounds() (left, right, bottom float64, ok bool) {
	left, right, bottom = math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, v := range f.Invaders {
		if v.Dead {
			continue
		}
		ok = true
		left = math.Min(left, v.X)
		right = math.Max(right, v.X+v.W)
		bottom = math.Max(bottom, v.Y+v.H)
	}
	return left, right, bottom, ok
}

// March moves the fleet sideways by speed*dt. When the move would cross a
// side margin the fleet reverses and steps down instead. Reports whether
// the fleet stepped down.
func (f *Fleet) March(dt, speed, margin, width float64) bool {
	left, right, _, ok := f.Bounds()
	if !ok {
		return false
	}

	// No room to march; hold position rather than stepping down every tick
	if right-left >= width-2*margin {
		return false
	}

	dx := f.Dir * speed * dt
	if left+dx < margin || right+dx > width-margin {
		f.Dir = -f.Dir
		for _, v := range f.Invaders {
			v.Y += f.cfg.StepDown
		}
		return true
	}

	for _, v := range f.Invaders {
		v.X += dx
	}
	return false
}

// Fit pulls the fleet back inside the margins after the play area
// shrinks. A fleet wider than the area is compressed: columns keep their
// order but move closer together.
func (f *Fleet) Fit(margin, width float64) {
	left, right, _, ok := f.Bounds()
	if !ok {
		return
	}

	avail := width - 2*margin
	if right-left > avail {
		// Leave a tenth of the area free on each side so the march goes on
		w := f.cfg.InvaderWidth
		span := right - left - w
		scale := 0.0
		if span > 0 {
			scale = math.Max(0, 0.8*avail-w) / span
		}
		for _, v := range f.Invaders {
			v.X = margin + 0.1*avail + (v.X-left)*scale
		}
		return
	}

	shift := 0.0
	switch {
	case right > width-margin:
		shift = width - margin - right
	case left < margin:
		shift = margin - left
	}
	for _, v := range f.Invaders {
		v.X += shift
	}
}

// Shooters returns the lowest live invader of every column.
func (f *Fleet) Shooters() []*Invader {
	lowest := make(map[int]*Invader)
	for _, v := range f.Invaders {
		if v.Dead {
			continue
		}
		if cur, ok := lowest[v.Col]; !ok || v.Row > cur.Row {
			lowest[v.Col] = v
		}
	}

	// Map iteration order is random; walk the slice instead
	shooters := make([]*Invader, 0, len(lowest))
	for _, v := range f.Invaders {
		if lowest[v.Col] == v {
			shooters = append(shooters, v)
		}
	}
	return shooters
}

// Sweep drops dead invaders.
func (f *Fleet) Sweep() {
	live := f.Invaders[:0]
	for _, v := range f.Invaders {
		if !v.Dead {
			live = append(live, v)
		}
	}
	clear(f.Invaders[len(live):])
	f.Invaders = live
}
