package riverrun

import (
	"math/rand"

	"github.com/vovakirdan/shooter-arcade/internal/config"
)

// Spawner releases enemies from the top edge on a shrinking timer.
type Spawner struct {
	cfg   config.RiverRunSpawn
	enemy config.RiverRunEnemy
	diff  *config.DifficultyManager
	rng   *rand.Rand
	timer float64 // Seconds until the next spawn attempt
}

// NewSpawner creates a spawner that fires on its first update.
func NewSpawner(cfg config.RiverRunSpawn, enemy config.RiverRunEnemy, diff *config.DifficultyManager, rng *rand.Rand) *Spawner {
	return &Spawner{cfg: cfg, enemy: enemy, diff: diff, rng: rng}
}

// Interval returns the current spawn period for the given progress.
func (s *Spawner) Interval(p config.Progress) float64 {
	return s.diff.Interval(s.cfg.BaseInterval, s.cfg.MinInterval, p)
}

// Update advances the timer and returns a new enemy when one is due and
// fewer than max_enemies are alive. The timer rearms even when the cap
// blocks the spawn.
func (s *Spawner) Update(dt, width float64, alive int, p config.Progress) *Enemy {
	s.timer -= dt
	if s.timer > 0 {
		return nil
	}
	s.timer = s.Interval(p)
	if alive >= s.cfg.MaxEnemies {
		return nil
	}

	span := max(0, width-80)
	e := &Enemy{
		X:  20 + s.rng.Float64()*span,
		Y:  -40,
		W:  s.enemy.Width,
		H:  s.enemy.Height,
		VY: s.diff.Speed(s.enemy.MinSpeed+s.rng.Float64()*s.enemy.SpeedRange, p),
	}
	if s.rng.Float64() < s.enemy.AltKindChance {
		e.Kind = 1
	}
	return e
}
