package config

import (
	_ "embed"
)

//go:embed defaults/riverrun.yaml
var defaultRiverRunYAML []byte

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultRiverRunConfig returns the default River Run configuration.
func DefaultRiverRunConfig() RiverRunConfig {
	return RiverRunConfig{
		Ship: RiverRunShip{
			Width:        42,
			Height:       28,
			Speed:        220,
			Margin:       12,
			FireCooldown: 0.25,
			StartOffsetY: 80,
		},
		Bullet: BulletConfig{
			Width:  4,
			Height: 10,
			Speed:  500,
		},
		Enemy: RiverRunEnemy{
			Width:         36,
			Height:        24,
			MinSpeed:      40,
			SpeedRange:    80,
			AltKindChance: 0.4,
		},
		Spawn: RiverRunSpawn{
			BaseInterval: 1.2,
			MinInterval:  0.6,
			MaxEnemies:   6,
		},
		Gameplay: RiverRunGameplay{
			Lives:        3,
			Fuel:         100,
			FuelDrain:    6,
			KillPoints:   150,
			RestartDelay: 2.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 42,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0,
				IntervalReduction: 0.7,
			},
		},
	}
}

// DefaultInvadersConfig returns the default Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Cannon: InvadersCannon{
			Width:        40,
			Height:       16,
			Speed:        200,
			Margin:       8,
			FireCooldown: 0.3,
			MaxShots:     1,
		},
		Shot: BulletConfig{
			Width:  4,
			Height: 12,
			Speed:  420,
		},
		Bomb: InvadersBomb{
			Width:       4,
			Height:      12,
			Speed:       160,
			Interval:    1.0,
			MinInterval: 0.35,
			MaxBombs:    3,
		},
		Fleet: InvadersFleet{
			Rows:          5,
			Cols:          11,
			InvaderWidth:  24,
			InvaderHeight: 16,
			SpacingX:      40,
			SpacingY:      32,
			Top:           48,
			MarchSpeed:    24,
			StepDown:      16,
			WaveDrop:      16,
			MaxWaveDrop:   96,
			ThinSpeedup:   3,
		},
		Gameplay: InvadersGameplay{
			Lives:        3,
			Points:       []int{10, 20, 30},
			RestartDelay: 2.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "riverrun":
		return defaultRiverRunYAML
	case "invaders":
		return defaultInvadersYAML
	default:
		return nil
	}
}
