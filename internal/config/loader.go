package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the configuration file name searched in every location.
const ConfigFile = "berzerk.yaml"

// Minimum arena size. Smaller arenas leave some spawn regions empty.
const (
	MinArenaWidth  = 480
	MinArenaHeight = 560
)

// Load returns the Berzerk configuration. customPath, when set, must
// exist and parse. Otherwise the first readable file of
// ~/.berzerk/configs/berzerk.yaml and ./configs/berzerk.yaml is used, and
// the embedded default when there is none.
//
// Files are decoded over DefaultBerzerkConfig, so a file only needs the
// keys it changes. Broken files on the search path are skipped.
func Load(customPath string) (BerzerkConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBerzerkConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPath() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := decode(defaultBerzerkYAML); err == nil {
		return cfg, nil
	}
	return DefaultBerzerkConfig(), nil
}

func searchPath() []string {
	var paths []string
	if user := UserConfigPath(); user != "" {
		paths = append(paths, user)
	}
	return append(paths, filepath.Join("configs", ConfigFile))
}

// decode overlays YAML data on the defaults.
func decode(data []byte) (BerzerkConfig, error) {
	cfg := DefaultBerzerkConfig()
	err := yaml.Unmarshal(data, &cfg)
	return cfg, err
}

// LoadWithPreset loads the configuration, applies the named difficulty
// preset and validates the result. An empty preset keeps the one from
// the file.
func LoadWithPreset(customPath, preset string) (BerzerkConfig, error) {
	cfg, err := Load(customPath)
	if err != nil {
		return cfg, err
	}

	name := preset
	if name == "" {
		name = string(cfg.Difficulty.Preset)
	}
	p, err := ParseDifficulty(name)
	if err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg, p)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".berzerk", "configs", ConfigFile)
}

// Marshal renders the config as YAML.
func (c BerzerkConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate checks that the simulation can run with these values.
// All problems are reported together.
func (c BerzerkConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Arena.Width >= MinArenaWidth, "arena.width must be at least %d, got %g", MinArenaWidth, c.Arena.Width)
	check(c.Arena.Height >= MinArenaHeight, "arena.height must be at least %d, got %g", MinArenaHeight, c.Arena.Height)

	check(c.Player.Speed > 0, "player.speed must be positive")
	check(c.Player.Width > 0 && c.Player.Height > 0, "player.width and player.height must be positive")
	check(c.Player.Health > 0, "player.health must be positive")
	check(c.Player.Knockback >= 0, "player.knockback must not be negative")

	check(c.Enemy.Speed > 0, "enemy.speed must be positive")
	check(c.Enemy.Size > 0, "enemy.size must be positive")
	check(c.Enemy.MoveRoll > 1, "enemy.move_roll must be greater than 1")

	check(c.Bullet.Speed > 0, "bullet.speed must be positive")
	check(c.Bullet.Size > 0, "bullet.size must be positive")

	check(c.Rules.KillScore >= 0, "rules.kill_score must not be negative")
	check(c.Rules.BaseEnemies >= 0 && c.Rules.EnemiesPerLevel >= 0, "rules enemy counts must not be negative")
	check(c.Rules.FinalLevel >= 2, "rules.final_level must be at least 2")
	check(c.Rules.FireRollPerLevel >= 0, "rules.fire_roll_per_level must not be negative")
	check(c.Rules.FireRollMax(c.Rules.FinalLevel-1) > 1,
		"rules.fire_roll_base is too small: the fire roll is empty at level %d", c.Rules.FinalLevel-1)
	check(c.Rules.CueCooldown > 0, "rules.cue_cooldown must be positive")

	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be between 0 and 1")
	check(c.Controls.ReleaseAfterTicks > 0, "controls.release_after_ticks must be positive")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
