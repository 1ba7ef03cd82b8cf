package invaders

import (
	"github.com/vovakirdan/shooter-arcade/internal/config"
	"github.com/vovakirdan/shooter-arcade/internal/core"
)

// Cannon is the player's horizontally moving gun.
type Cannon struct {
	X, Y     float64
	W, H     float64
	Cooldown float64
}

// Rect returns the cannon's bounding box.
func (c *Cannon) Rect() core.RectF {
	return core.NewRectF(c.X, c.Y, c.W, c.H)
}

// Update moves the cannon and reports whether the fire button is ready.
// The caller decides whether a shot can actually be spawned.
func (c *Cannon) Update(in *core.InputState, dt float64, cfg config.InvadersCannon, w float64) bool {
	c.X += in.Axis(core.ActionLeft, core.ActionRight) * cfg.Speed * dt
	c.Clamp(cfg.Margin, w)

	if c.Cooldown > 0 {
		c.Cooldown = max(0, c.Cooldown-dt)
	}
	return in.Held(core.ActionFire) && c.Cooldown <= 0
}

// Clamp keeps the cannon between the side margins.
func (c *Cannon) Clamp(margin, w float64) {
	c.X = core.ClampF(c.X, margin, w-c.W-margin)
}

// Projectile is a shot (moving up) or a bomb (moving down).
type Projectile struct {
	X, Y float64
	W, H float64
	VY   float64
	Dead bool
}

// Rect returns the projectile's bounding box.
func (p *Projectile) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Update moves the projectile; it dies 20 units past either vertical edge.
func (p *Projectile) Update(dt, h float64) {
	p.Y += p.VY * dt
	if p.Y < -20 || p.Y > h+20 {
		p.Dead = true
	}
}

// Invader is one member of the fleet.
type Invader struct {
	X, Y     float64
	W, H     float64
	Row, Col int
	Kind     int // 0 bottom rows, 1 middle rows, 2 top row
	Dead     bool
}

// Rect returns the invader's bounding box.
func (v *Invader) Rect() core.RectF {
	return core.NewRectF(v.X, v.Y, v.W, v.H)
}

// sweepProjectiles drops dead projectiles in place.
func sweepProjectiles(ps []*Projectile) []*Projectile {
	live := ps[:0]
	for _, p := range ps {
		if !p.Dead {
			live = append(live, p)
		}
	}
	clear(ps[len(live):])
	return live
}
