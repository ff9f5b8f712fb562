package berzerk

import (
	"math/rand"

	"github.com/vovakirdan/tui-berzerk/internal/config"
	"github.com/vovakirdan/tui-berzerk/internal/core"
)

// Player is the humanoid controlled by the user.
type Player struct {
	Pos       core.Vec2
	Heading   Heading
	Health    int
	MaxHealth int
	Moving    bool // movement intent, set by a held direction
	W, H      float64
}

// NewPlayer creates a player at (x, y) with full health facing east.
func NewPlayer(x, y float64, cfg config.PlayerConfig) Player {
	return Player{
		Pos:       core.V(x, y),
		Heading:   East,
		Health:    cfg.Health,
		MaxHealth: cfg.Health,
		W:         cfg.Width,
		H:         cfg.Height,
	}
}

// Reset restores position and health. Score and level live elsewhere and
// are not touched.
func (p *Player) Reset(x, y float64) {
	p.Pos = core.V(x, y)
	p.Health = p.MaxHealth
}

// SetHeading faces h and sets the movement intent.
func (p *Player) SetHeading(h Heading) {
	p.Heading = h
	p.Moving = true
}

// ClearIntent stops continuous movement.
func (p *Player) ClearIntent() {
	p.Moving = false
}

// Move takes one step along the heading while the intent is set.
func (p *Player) Move(speed float64) {
	if p.Moving {
		p.Pos = p.Pos.Add(p.Heading.Delta(speed))
	}
}

// TakeHit removes one health point. Health never goes below zero.
func (p *Player) TakeHit() {
	if p.Health > 0 {
		p.Health--
	}
}

// Knockback pushes the player away from its heading.
func (p *Player) Knockback(dist float64) {
	p.Pos = p.Pos.Add(p.Heading.Opposite().Delta(dist))
}

// PlaceRandom relocates the player without touching health.
func (p *Player) PlaceRandom(a Arena, rng *rand.Rand) {
	p.Pos = RandomPlacement(rng, a)
}

// HitsWall reports whether the player's box touches w.
func (p Player) HitsWall(w Wall) bool {
	return w.overlapsBox(p.Pos, p.W, p.H)
}

// HitsEnemy reports whether the player's box overlaps the robot's box.
func (p Player) HitsEnemy(e Enemy) bool {
	return p.Pos.X+p.W >= e.Pos.X && e.Pos.X+e.Size >= p.Pos.X &&
		p.Pos.Y+p.H >= e.Pos.Y && e.Pos.Y+e.Size >= p.Pos.Y
}
