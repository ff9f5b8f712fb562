package config

import (
	_ "embed"
)

//go:embed defaults/berzerk.yaml
var defaultBerzerkYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBerzerkYAML
}

// DefaultBerzerkConfig returns the default Berzerk configuration.
func DefaultBerzerkConfig() BerzerkConfig {
	return BerzerkConfig{
		Arena: ArenaConfig{
			Width:  900,
			Height: 600,
		},
		Player: PlayerConfig{
			Speed:     5.0,
			Width:     20,
			Height:    33,
			Health:    3,
			Knockback: 50,
		},
		Enemy: EnemyConfig{
			Speed:    5.0,
			Size:     40,
			MoveRoll: 30,
			MoveHit:  3,
		},
		Bullet: BulletConfig{
			Speed:        5.0,
			Size:         5,
			CullOffArena: true,
		},
		Rules: RulesConfig{
			KillScore:        50,
			BaseEnemies:      4,
			EnemiesPerLevel:  2,
			FinalLevel:       5,
			FireRollBase:     100,
			FireRollPerLevel: 3,
			FireHit:          5,
			CueCooldown:      1.5,
		},
		Audio: AudioConfig{
			Sinks:       "beep",
			Volume:      0.6,
			MaxInFlight: 8,
		},
		Controls: ControlsConfig{
			ReleaseAfterTicks: 20,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}
