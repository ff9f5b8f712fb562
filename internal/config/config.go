// Package config provides YAML-based game configuration loading,
// difficulty presets and validation for the berzerk platform.
package config

// BerzerkConfig contains all tunable parameters of the simulation and of
// its delivery surfaces. Distances are logical arena units, times are seconds.
type BerzerkConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Rules      RulesConfig      `yaml:"rules"`
	Audio      AudioConfig      `yaml:"audio"`
	Controls   ControlsConfig   `yaml:"controls"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the logical playfield size.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Speed     float64 `yaml:"speed"`     // Units per tick while a direction is held
	Width     float64 `yaml:"width"`     // Collision box width
	Height    float64 `yaml:"height"`    // Collision box height, also the bullet hit size
	Health    int     `yaml:"health"`    // Health after a reset
	Knockback float64 `yaml:"knockback"` // Push-back distance after touching a wall
}

// EnemyConfig defines robot parameters.
type EnemyConfig struct {
	Speed    float64 `yaml:"speed"`
	Size     float64 `yaml:"size"`
	MoveRoll int     `yaml:"move_roll"` // Upper exclusive bound of the per-tick move roll [1, move_roll)
	MoveHit  int     `yaml:"move_hit"`  // Roll value that makes the robot step
}

// BulletConfig defines projectile parameters.
type BulletConfig struct {
	Speed        float64 `yaml:"speed"`
	Size         float64 `yaml:"size"`
	CullOffArena bool    `yaml:"cull_off_arena"` // Kill bullets that leave the arena
}

// RulesConfig defines scoring, level progression and firing rules.
type RulesConfig struct {
	KillScore        int     `yaml:"kill_score"`
	BaseEnemies      int     `yaml:"base_enemies"`        // Enemies per level = base + per_level * level
	EnemiesPerLevel  int     `yaml:"enemies_per_level"`
	FinalLevel       int     `yaml:"final_level"`         // Reaching this level wins the run
	FireRollBase     int     `yaml:"fire_roll_base"`      // Enemy fire roll is [1, base - per_level * level)
	FireRollPerLevel int     `yaml:"fire_roll_per_level"`
	FireHit          int     `yaml:"fire_hit"`            // Roll value that makes a robot shoot
	CueCooldown      float64 `yaml:"cue_cooldown"`        // Seconds between gated cues
}

// AudioConfig defines cue playback.
type AudioConfig struct {
	Sinks       string  `yaml:"sinks"`         // Comma-separated sink names: beep, bell, log, none
	Volume      float64 `yaml:"volume"`        // 0.0 to 1.0
	MaxInFlight int     `yaml:"max_in_flight"` // Concurrent playbacks before cues are dropped
}

// ControlsConfig defines input handling.
type ControlsConfig struct {
	// Terminals report key repeats but no key releases. A direction is
	// considered released after this many ticks without a repeat.
	ReleaseAfterTicks int `yaml:"release_after_ticks"`
}

// DifficultyConfig selects a named preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// EnemiesForLevel returns how many robots a level starts with.
func (r RulesConfig) EnemiesForLevel(level int) int {
	return r.BaseEnemies + r.EnemiesPerLevel*level
}

// FireRollMax returns the exclusive upper bound of the enemy fire roll.
func (r RulesConfig) FireRollMax(level int) int {
	return r.FireRollBase - r.FireRollPerLevel*level
}
