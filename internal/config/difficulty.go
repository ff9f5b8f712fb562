package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every preset in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParseDifficulty converts a flag value into a preset.
// An empty string selects normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard or fixed)", s)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *BerzerkConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset

	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 5
		cfg.Rules.FireRollBase = 140
		cfg.Rules.EnemiesPerLevel = 1
	case DifficultyHard:
		cfg.Player.Health = 2
		cfg.Rules.FireRollBase = 70
		cfg.Rules.FireRollPerLevel = 5
		cfg.Enemy.MoveRoll = 15
	case DifficultyFixed:
		// Robots shoot at the level 1 rate on every level
		cfg.Rules.FireRollBase -= cfg.Rules.FireRollPerLevel
		cfg.Rules.FireRollPerLevel = 0
	}
}
