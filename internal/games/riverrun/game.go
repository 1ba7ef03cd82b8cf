// Package riverrun implements River Run, a vertical-scrolling shooter.
// The ship flies over a scrolling river, shoots enemies drifting down
// from the top and burns fuel the whole time.
package riverrun

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/shooter-arcade/internal/config"
	"github.com/vovakirdan/shooter-arcade/internal/core"
	"github.com/vovakirdan/shooter-arcade/internal/registry"
)

// Game states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// Background stripes scroll at 60 units per second.
const (
	scrollSpeed = 60.0
	stripeWidth = 80.0
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game implements River Run.
type Game struct {
	cfg        config.RiverRunConfig
	loaded     bool
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	spawner    *Spawner

	ship    Ship
	bullets []*Bullet
	enemies []*Enemy

	state     string
	score     int
	lives     int
	fuel      float64
	elapsed   float64
	bgOffset  float64
	overTimer float64 // Seconds left before automatic reset
	tick      uint64
	resets    int // Completed runs, mixed into the seed of the next one
}

// New creates a River Run game that loads its config on first Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a River Run game with an explicit config.
func NewWithConfig(cfg config.RiverRunConfig) *Game {
	return &Game{cfg: cfg, loaded: true}
}

func init() {
	registry.Register("riverrun", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "riverrun"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "River Run"
}

// Reset initializes a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.loaded {
		cfg, err := config.LoadRiverRun(configPath)
		if err != nil {
			cfg = config.DefaultRiverRunConfig()
		}
		config.ApplyRiverRunPreset(&cfg, difficultyPreset)
		g.cfg = cfg
		g.loaded = true
	}

	g.runtime = runtime
	g.resets = 0
	g.restart()
}

// restart rebuilds the run state. Each restart draws from a fresh RNG
// derived from the runtime seed and the number of previous runs, so a
// replay with the same inputs sees the same enemies.
func (g *Game) restart() {
	g.rng = rand.New(rand.NewSource(g.runtime.Seed + int64(g.resets)))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.spawner = NewSpawner(g.cfg.Spawn, g.cfg.Enemy, g.difficulty, g.rng)

	w, h := g.runtime.Width, g.runtime.Height
	g.ship = Ship{
		X: w/2 - g.cfg.Ship.Width/2,
		Y: h/2 + g.cfg.Ship.StartOffsetY,
		W: g.cfg.Ship.Width,
		H: g.cfg.Ship.Height,
	}
	g.ship.Clamp(g.cfg.Ship.Margin, w, h)

	g.bullets = make([]*Bullet, 0, 16)
	g.enemies = make([]*Enemy, 0, g.cfg.Spawn.MaxEnemies)
	g.state = StatePlaying
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.fuel = g.cfg.Gameplay.Fuel
	g.elapsed = 0
	g.bgOffset = 0
	g.overTimer = 0
	g.tick = 0
}

// Step advances the game by dt.
func (g *Game) Step(in *core.InputState, dt time.Duration) core.StepResult {
	var events []core.Event
	secs := dt.Seconds()

	// Restart works from any state
	if in.Triggered(core.ActionRestart) {
		g.resets++
		g.restart()
		events = append(events, core.Event{Kind: core.EventReset})
		return core.StepResult{State: g.State(), Events: events}
	}

	switch g.state {
	case StateGameOver:
		g.overTimer -= secs
		if g.overTimer <= 0 {
			g.resets++
			g.restart()
			events = append(events, core.Event{Kind: core.EventReset})
		}
		return core.StepResult{State: g.State(), Events: events}
	case StatePaused:
		if in.Triggered(core.ActionPause) {
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	}

	if in.Triggered(core.ActionPause) {
		g.state = StatePaused
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.elapsed += secs
	g.bgOffset += secs * scrollSpeed
	w, h := g.runtime.Width, g.runtime.Height
	progress := config.Progress{Score: g.score, Elapsed: g.elapsed}

	// Movement and firing
	if g.ship.Update(in, secs, g.cfg.Ship, w, h) {
		g.fire()
	}

	for _, b := range g.bullets {
		b.Update(secs, h)
	}

	if e := g.spawner.Update(secs, w, len(g.enemies), progress); e != nil {
		g.enemies = append(g.enemies, e)
	}

	for _, e := range g.enemies {
		e.Update(secs, h)
	}

	g.resolveCollisions()

	// Fuel burns continuously; an empty tank ends the run
	g.fuel -= g.cfg.Gameplay.FuelDrain * secs
	if g.fuel <= 0 {
		g.fuel = 0
		g.lives = 0
	}

	g.bullets = sweepBullets(g.bullets)
	g.enemies = sweepEnemies(g.enemies)

	if g.lives <= 0 {
		g.lives = 0
		g.state = StateGameOver
		g.overTimer = g.cfg.Gameplay.RestartDelay
		events = append(events, core.Event{
			Kind:    core.EventGameOver,
			Score:   g.score,
			Elapsed: g.elapsed,
		})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// fire spawns a bullet just above the ship's nose.
func (g *Game) fire() {
	bc := g.cfg.Bullet
	g.bullets = append(g.bullets, &Bullet{
		X:  g.ship.X + g.ship.W/2 - bc.Width/2,
		Y:  g.ship.Y - 12,
		W:  bc.Width,
		H:  bc.Height,
		VY: -bc.Speed,
	})
}

// resolveCollisions runs the pairwise bullet/enemy and enemy/ship scans.
func (g *Game) resolveCollisions() {
	for _, b := range g.bullets {
		if b.Dead {
			continue
		}
		br := b.Rect()
		for _, e := range g.enemies {
			if !e.Dead && e.Rect().Intersects(br) {
				e.Dead = true
				b.Dead = true
				g.score += g.cfg.Gameplay.KillPoints
			}
		}
	}

	sr := g.ship.Rect()
	for _, e := range g.enemies {
		if !e.Dead && e.Rect().Intersects(sr) {
			e.Dead = true
			g.lives--
		}
	}
}

// Resize updates the play area and keeps the ship inside it.
func (g *Game) Resize(w, h float64) {
	g.runtime.Width = w
	g.runtime.Height = h
	g.ship.Clamp(g.cfg.Ship.Margin, w, h)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
		Elapsed:  g.elapsed,
		Meters: []core.Meter{
			{Label: "Fuel", Value: fmt.Sprintf("%d%%", int(math.Max(0, math.Floor(g.fuel))))},
		},
	}
}

// Draw paints the river, enemies, bullets, ship and any message box.
func (g *Game) Draw(dst core.Canvas) {
	w, h := dst.Size()
	dst.Clear(core.Style{Color: core.ColorRiver, Glyph: ' '})

	// Current stripes
	for x := -math.Mod(g.bgOffset, stripeWidth); x < w; x += stripeWidth {
		dst.FillRect(core.NewRectF(x, 0, stripeWidth*0.6, h), core.Style{Color: core.ColorStripe, Glyph: '░'})
	}

	for _, e := range g.enemies {
		c := core.ColorPink
		if e.Kind == 1 {
			c = core.ColorOrange
		}
		dst.FillRect(e.Rect(), core.Solid(c))
	}

	for _, b := range g.bullets {
		dst.FillRect(b.Rect(), core.Style{Color: core.ColorBrightWhite, Glyph: '│'})
	}

	s := g.ship
	dst.FillDiamond(s.Rect(), core.Style{Color: core.ColorViolet, Glyph: '◆'})
	dst.FillRect(core.NewRectF(s.X+s.W*0.45, s.Y+s.H*0.25, s.W*0.2, s.H*0.2), core.Style{Color: core.ColorBrightWhite, Glyph: '▪'})

	switch g.state {
	case StatePaused:
		core.DrawMessage(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		core.DrawMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d", g.score))
	}
}
