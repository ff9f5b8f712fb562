package berzerk

import "slices"

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Tick          uint64
	Score         int
	Level         int
	Status        Status
	Arena         Arena
	Player        Player
	PlayerBullets []Bullet
	EnemyBullets  []Bullet
	Enemies       []Enemy
	Walls         []Wall
}

// Snapshot copies the current engine state. Mutating the result does not
// affect the engine.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:          e.session.Tick,
		Score:         e.session.Score,
		Level:         e.session.Level,
		Status:        e.session.Status,
		Arena:         e.arena,
		Player:        e.player,
		PlayerBullets: slices.Clone(e.playerBullets),
		EnemyBullets:  slices.Clone(e.enemyBullets),
		Enemies:       slices.Clone(e.enemies),
		Walls:         slices.Clone(e.walls),
	}
}
