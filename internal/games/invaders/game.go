// Package invaders implements a Space Invaders clone: a marching fleet,
// a cannon at the bottom and bombs dropped from the lowest invaders.
package invaders

import (
	"fmt"
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

// Game implements Invaders.
type Game struct {
	cfg        config.InvadersConfig
	loaded     bool
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	cannon Cannon
	fleet  *Fleet
	shots  []*Projectile
	bombs  []*Projectile

	state     string
	score     int
	lives     int
	wave      int // Cleared waves
	elapsed   float64
	bombTimer float64
	overTimer float64
	tick      uint64
	resets    int
}

// New creates an Invaders game that loads its config on first Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates an Invaders game with an explicit config.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	return &Game{cfg: cfg, loaded: true}
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Invaders"
}

// Reset initializes a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.loaded {
		cfg, err := config.LoadInvaders(configPath)
		if err != nil {
			cfg = config.DefaultInvadersConfig()
		}
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
		g.cfg = cfg
		g.loaded = true
	}

	g.runtime = runtime
	g.resets = 0
	g.restart()
}

func (g *Game) restart() {
	g.rng = rand.New(rand.NewSource(g.runtime.Seed + int64(g.resets)))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	cc := g.cfg.Cannon
	g.cannon = Cannon{
		X: (g.runtime.Width - cc.Width) / 2,
		Y: g.runtime.Height - cc.Margin - cc.Height,
		W: cc.Width,
		H: cc.Height,
	}
	g.cannon.Clamp(cc.Margin, g.runtime.Width)

	g.state = StatePlaying
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.wave = 0
	g.elapsed = 0
	g.overTimer = 0
	g.tick = 0
	g.startWave()
}

// startWave spawns a fresh fleet; later waves start lower.
func (g *Game) startWave() {
	fc := g.cfg.Fleet
	drop := min(float64(g.wave)*fc.WaveDrop, fc.MaxWaveDrop)
	g.fleet = NewFleet(fc, g.runtime.Width, g.cfg.Cannon.Margin, drop)
	g.shots = make([]*Projectile, 0, g.cfg.Cannon.MaxShots)
	g.bombs = make([]*Projectile, 0, g.cfg.Bomb.MaxBombs)
	g.bombTimer = g.bombInterval()
}

func (g *Game) progress() config.Progress {
	return config.Progress{Score: g.score, Elapsed: g.elapsed, Wave: g.wave}
}

func (g *Game) bombInterval() float64 {
	return g.difficulty.Interval(g.cfg.Bomb.Interval, g.cfg.Bomb.MinInterval, g.progress())
}

// marchSpeed grows with the difficulty level and as the fleet thins.
func (g *Game) marchSpeed() float64 {
	return g.difficulty.Speed(g.cfg.Fleet.MarchSpeed, g.progress()) * g.fleet.ThinFactor()
}

// Step advances the game by dt.
func (g *Game) Step(in *core.InputState, dt time.Duration) core.StepResult {
	var events []core.Event
	secs := dt.Seconds()

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
	w, h := g.runtime.Width, g.runtime.Height

	if g.cannon.Update(in, secs, g.cfg.Cannon, w) && len(g.shots) < g.cfg.Cannon.MaxShots {
		g.cannon.Cooldown = g.cfg.Cannon.FireCooldown
		g.fire()
	}

	for _, s := range g.shots {
		s.Update(secs, h)
	}
	for _, b := range g.bombs {
		b.Update(secs, h)
	}

	g.fleet.March(secs, g.marchSpeed(), g.cfg.Cannon.Margin, w)
	g.dropBombs(secs)
	g.resolveCollisions()

	g.shots = sweepProjectiles(g.shots)
	g.bombs = sweepProjectiles(g.bombs)
	g.fleet.Sweep()

	_, _, bottom, ok := g.fleet.Bounds()
	landed := ok && bottom >= g.cannon.Y

	if g.lives <= 0 || landed {
		g.lives = max(0, g.lives)
		g.state = StateGameOver
		g.overTimer = g.cfg.Gameplay.RestartDelay
		events = append(events, core.Event{
			Kind:    core.EventGameOver,
			Score:   g.score,
			Elapsed: g.elapsed,
			Wave:    g.wave + 1,
		})
		return core.StepResult{State: g.State(), Events: events}
	}

	if g.fleet.Empty() {
		g.wave++
		events = append(events, core.Event{
			Kind:    core.EventWaveCleared,
			Score:   g.score,
			Elapsed: g.elapsed,
			Wave:    g.wave,
		})
		g.startWave()
	}

	return core.StepResult{State: g.State(), Events: events}
}

// fire spawns a shot from the cannon's barrel.
func (g *Game) fire() {
	sc := g.cfg.Shot
	g.shots = append(g.shots, &Projectile{
		X:  g.cannon.X + g.cannon.W/2 - sc.Width/2,
		Y:  g.cannon.Y - sc.Height,
		W:  sc.Width,
		H:  sc.Height,
		VY: -sc.Speed,
	})
}

// dropBombs lets a random bottom-of-column invader drop a bomb when the
// bomb timer expires and fewer than max_bombs are falling.
func (g *Game) dropBombs(dt float64) {
	g.bombTimer -= dt
	if g.bombTimer > 0 {
		return
	}
	g.bombTimer = g.bombInterval()

	if len(g.bombs) >= g.cfg.Bomb.MaxBombs {
		return
	}
	shooters := g.fleet.Shooters()
	if len(shooters) == 0 {
		return
	}

	v := shooters[g.rng.Intn(len(shooters))]
	bc := g.cfg.Bomb
	g.bombs = append(g.bombs, &Projectile{
		X:  v.X + v.W/2 - bc.Width/2,
		Y:  v.Y + v.H,
		W:  bc.Width,
		H:  bc.Height,
		VY: bc.Speed,
	})
}

// points returns the score for an invader kind.
func (g *Game) points(kind int) int {
	pts := g.cfg.Gameplay.Points
	if len(pts) == 0 {
		return 0
	}
	return pts[min(kind, len(pts)-1)]
}

func (g *Game) resolveCollisions() {
	for _, s := range g.shots {
		if s.Dead {
			continue
		}
		sr := s.Rect()
		for _, v := range g.fleet.Invaders {
			if !v.Dead && v.Rect().Intersects(sr) {
				v.Dead = true
				s.Dead = true
				g.score += g.points(v.Kind)
			}
		}
	}

	cr := g.cannon.Rect()
	for _, b := range g.bombs {
		if !b.Dead && b.Rect().Intersects(cr) {
			b.Dead = true
			g.lives--
		}
	}
}

// Resize updates the play area: the cannon stays on the bottom row and
// the fleet is pulled back inside the margins.
func (g *Game) Resize(w, h float64) {
	g.runtime.Width = w
	g.runtime.Height = h
	cc := g.cfg.Cannon
	g.cannon.Y = h - cc.Margin - cc.Height
	g.cannon.Clamp(cc.Margin, w)
	g.fleet.Fit(cc.Margin, w)
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
			{Label: "Wave", Value: fmt.Sprintf("%d", g.wave+1)},
		},
	}
}

// Invader colors and glyphs by kind.
var kindStyles = []core.Style{
	{Color: core.ColorBrightGreen, Glyph: '▀'},
	{Color: core.ColorBrightCyan, Glyph: '▄'},
	{Color: core.ColorBrightMagenta, Glyph: '▓'},
}

// Draw paints the fleet, cannon, projectiles and any message box.
func (g *Game) Draw(dst core.Canvas) {
	dst.Clear(core.Style{Color: core.ColorSpace, Glyph: ' '})

	for _, v := range g.fleet.Invaders {
		dst.FillRect(v.Rect(), kindStyles[min(v.Kind, len(kindStyles)-1)])
	}

	for _, s := range g.shots {
		dst.FillRect(s.Rect(), core.Style{Color: core.ColorBrightWhite, Glyph: '│'})
	}
	for _, b := range g.bombs {
		dst.FillRect(b.Rect(), core.Style{Color: core.ColorBrightRed, Glyph: '¦'})
	}

	c := g.cannon
	dst.FillRect(c.Rect(), core.Solid(core.ColorGreen))
	dst.FillRect(core.NewRectF(c.X+c.W/2-2, c.Y-6, 4, 6), core.Style{Color: core.ColorGreen, Glyph: '▲'})

	switch g.state {
	case StatePaused:
		core.DrawMessage(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		core.DrawMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  Wave: %d", g.score, g.wave+1))
	}
}
