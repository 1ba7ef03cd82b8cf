package riverrun

import (
	"github.com/vovakirdan/shooter-arcade/internal/config"
	"github.com/vovakirdan/shooter-arcade/internal/core"
)

// Ship is the player craft.
type Ship struct {
	X, Y     float64
	W, H     float64
	Cooldown float64 // Seconds until the next shot is allowed
}

// Rect returns the ship's bounding box.
func (s *Ship) Rect() core.RectF {
	return core.NewRectF(s.X, s.Y, s.W, s.H)
}

// Update moves the ship from held input, clamps it into the play area
// and reports whether a bullet should be fired this step.
func (s *Ship) Update(in *core.InputState, dt float64, cfg config.RiverRunShip, w, h float64) bool {
	s.X += in.Axis(core.ActionLeft, core.ActionRight) * cfg.Speed * dt
	s.Y += in.Axis(core.ActionUp, core.ActionDown) * cfg.Speed * dt
	s.Clamp(cfg.Margin, w, h)

	if s.Cooldown > 0 {
		s.Cooldown = max(0, s.Cooldown-dt)
	}
	if in.Held(core.ActionFire) && s.Cooldown <= 0 {
		s.Cooldown = cfg.FireCooldown
		return true
	}
	return false
}

// Clamp keeps the ship margin units away from every edge.
func (s *Ship) Clamp(margin, w, h float64) {
	s.X = core.ClampF(s.X, margin, w-s.W-margin)
	s.Y = core.ClampF(s.Y, margin, h-s.H-margin)
}

// Bullet is a player projectile moving vertically.
type Bullet struct {
	X, Y float64
	W, H float64
	VY   float64
	Dead bool
}

// Rect returns the bullet's bounding box.
func (b *Bullet) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

// Update moves the bullet; it dies 20 units past either vertical edge.
func (b *Bullet) Update(dt, h float64) {
	b.Y += b.VY * dt
	if b.Y < -20 || b.Y > h+20 {
		b.Dead = true
	}
}

// Enemy drifts down the river.
type Enemy struct {
	X, Y float64
	W, H float64
	VY   float64
	Kind int
	Dead bool
}

// Rect returns the enemy's bounding box.
func (e *Enemy) Rect() core.RectF {
	return core.NewRectF(e.X, e.Y, e.W, e.H)
}

// Update moves the enemy; it dies 40 units below the bottom edge.
func (e *Enemy) Update(dt, h float64) {
	e.Y += e.VY * dt
	if e.Y > h+40 {
		e.Dead = true
	}
}

// sweepBullets drops dead bullets in place.
func sweepBullets(bullets []*Bullet) []*Bullet {
	live := bullets[:0]
	for _, b := range bullets {
		if !b.Dead {
			live = append(live, b)
		}
	}
	clear(bullets[len(live):])
	return live
}

// sweepEnemies drops dead enemies in place.
func sweepEnemies(enemies []*Enemy) []*Enemy {
	live := enemies[:0]
	for _, e := range enemies {
		if !e.Dead {
			live = append(live, e)
		}
	}
	clear(enemies[len(live):])
	return live
}
