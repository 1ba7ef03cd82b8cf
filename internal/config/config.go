// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// RiverRunConfig contains all configuration for the River Run game.
// Distances are world units, speeds are units per second, times are seconds.
type RiverRunConfig struct {
	Ship       RiverRunShip     `yaml:"ship"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Enemy      RiverRunEnemy    `yaml:"enemy"`
	Spawn      RiverRunSpawn    `yaml:"spawn"`
	Gameplay   RiverRunGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RiverRunShip defines the player ship.
type RiverRunShip struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	Margin       float64 `yaml:"margin"`        // Distance kept from every edge
	FireCooldown float64 `yaml:"fire_cooldown"` // Seconds between shots
	StartOffsetY float64 `yaml:"start_offset_y"`
}

// BulletConfig defines a projectile.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// RiverRunEnemy defines the enemies drifting down the river.
type RiverRunEnemy struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	MinSpeed      float64 `yaml:"min_speed"`
	SpeedRange    float64 `yaml:"speed_range"`
	AltKindChance float64 `yaml:"alt_kind_chance"` // Probability of kind 1
}

// RiverRunSpawn defines the enemy spawner.
type RiverRunSpawn struct {
	BaseInterval float64 `yaml:"base_interval"`
	MinInterval  float64 `yaml:"min_interval"`
	MaxEnemies   int     `yaml:"max_enemies"`
}

// RiverRunGameplay defines counters and scoring.
type RiverRunGameplay struct {
	Lives        int     `yaml:"lives"`
	Fuel         float64 `yaml:"fuel"`
	FuelDrain    float64 `yaml:"fuel_drain"` // Per second
	KillPoints   int     `yaml:"kill_points"`
	RestartDelay float64 `yaml:"restart_delay"`
}

// Validate reports configuration values the simulation cannot run with.
func (c RiverRunConfig) Validate() error {
	var errs []error
	if c.Ship.Width <= 0 || c.Ship.Height <= 0 {
		errs = append(errs, errors.New("ship size must be positive"))
	}
	if c.Bullet.Width <= 0 || c.Bullet.Height <= 0 {
		errs = append(errs, errors.New("bullet size must be positive"))
	}
	if c.Enemy.Width <= 0 || c.Enemy.Height <= 0 {
		errs = append(errs, errors.New("enemy size must be positive"))
	}
	if c.Spawn.MinInterval <= 0 || c.Spawn.BaseInterval < c.Spawn.MinInterval {
		errs = append(errs, fmt.Errorf("spawn intervals must satisfy 0 < min_interval (%v) <= base_interval (%v)",
			c.Spawn.MinInterval, c.Spawn.BaseInterval))
	}
	if c.Spawn.MaxEnemies < 0 {
		errs = append(errs, fmt.Errorf("max_enemies must not be negative, got %d", c.Spawn.MaxEnemies))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.Fuel <= 0 {
		errs = append(errs, fmt.Errorf("fuel must be positive, got %v", c.Gameplay.Fuel))
	}
	errs = append(errs, c.Difficulty.validate())
	return errors.Join(errs...)
}

// InvadersConfig contains all configuration for the Invaders game.
type InvadersConfig struct {
	Cannon     InvadersCannon   `yaml:"cannon"`
	Shot       BulletConfig     `yaml:"shot"`
	Bomb       InvadersBomb     `yaml:"bomb"`
	Fleet      InvadersFleet    `yaml:"fleet"`
	Gameplay   InvadersGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// InvadersCannon defines the player cannon.
type InvadersCannon struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	Margin       float64 `yaml:"margin"`
	FireCooldown float64 `yaml:"fire_cooldown"`
	MaxShots     int     `yaml:"max_shots"` // Player shots alive at once
}

// InvadersBomb defines the projectiles dropped by the fleet.
type InvadersBomb struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	Interval    float64 `yaml:"interval"`     // Seconds between drops at level 0
	MinInterval float64 `yaml:"min_interval"` // Lower bound after difficulty scaling
	MaxBombs    int     `yaml:"max_bombs"`
}

// InvadersFleet defines the invader grid and its march.
type InvadersFleet struct {
	Rows          int     `yaml:"rows"`
	Cols          int     `yaml:"cols"`
	InvaderWidth  float64 `yaml:"invader_width"`
	InvaderHeight float64 `yaml:"invader_height"`
	SpacingX      float64 `yaml:"spacing_x"`
	SpacingY      float64 `yaml:"spacing_y"`
	Top           float64 `yaml:"top"`
	MarchSpeed    float64 `yaml:"march_speed"`
	StepDown      float64 `yaml:"step_down"`
	WaveDrop      float64 `yaml:"wave_drop"`     // Extra start depth per cleared wave
	MaxWaveDrop   float64 `yaml:"max_wave_drop"` // Cap on the extra start depth
	ThinSpeedup   float64 `yaml:"thin_speedup"`  // March multiplier added when one invader is left
}

// InvadersGameplay defines counters and scoring.
type InvadersGameplay struct {
	Lives        int     `yaml:"lives"`
	Points       []int   `yaml:"points"` // Per kind, bottom rows first
	RestartDelay float64 `yaml:"restart_delay"`
}

// Validate reports configuration values the simulation cannot run with.
func (c InvadersConfig) Validate() error {
	var errs []error
	if c.Cannon.Width <= 0 || c.Cannon.Height <= 0 {
		errs = append(errs, errors.New("cannon size must be positive"))
	}
	if c.Cannon.MaxShots <= 0 {
		errs = append(errs, fmt.Errorf("max_shots must be positive, got %d", c.Cannon.MaxShots))
	}
	if c.Fleet.Rows <= 0 || c.Fleet.Cols <= 0 {
		errs = append(errs, fmt.Errorf("fleet must have rows and cols, got %dx%d", c.Fleet.Rows, c.Fleet.Cols))
	}
	if c.Fleet.SpacingX < c.Fleet.InvaderWidth || c.Fleet.SpacingY < c.Fleet.InvaderHeight {
		errs = append(errs, errors.New("fleet spacing must not be smaller than the invader size"))
	}
	if c.Bomb.MinInterval <= 0 || c.Bomb.Interval < c.Bomb.MinInterval {
		errs = append(errs, errors.New("bomb intervals must satisfy 0 < min_interval <= interval"))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives must be positive, got %d", c.Gameplay.Lives))
	}
	if len(c.Gameplay.Points) == 0 {
		errs = append(errs, errors.New("points must list at least one kind"))
	}
	errs = append(errs, c.Difficulty.validate())
	return errors.Join(errs...)
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", "wave", or "none"
	MaxAt float64 `yaml:"max_at"` // Score, seconds or wave at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Seconds removed from timers at max difficulty
}

func (d DifficultyConfig) validate() error {
	switch d.Progression.Type {
	case "score", "time", "wave", "none", "":
	default:
		return fmt.Errorf("unknown progression type %q", d.Progression.Type)
	}
	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		return fmt.Errorf("initial_level must be within [0, 1], got %v", d.InitialLevel)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty means "use config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// applyPreset modifies the difficulty section based on a preset.
func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}

// ApplyRiverRunPreset modifies the config based on a difficulty preset.
func ApplyRiverRunPreset(cfg *RiverRunConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.FuelDrain *= 0.5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Spawn.MaxEnemies += 2
	}
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Cannon.MaxShots = 2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Bomb.MaxBombs++
	}
}
