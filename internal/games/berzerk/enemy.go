package berzerk

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-berzerk/internal/config"
	"github.com/vovakirdan/tui-berzerk/internal/core"
)

// Enemy is a robot. Robots may overlap each other.
type Enemy struct {
	Pos     core.Vec2
	Alive   bool
	Size    float64
	Heading Heading
}

// NewEnemy creates a live robot facing east.
func NewEnemy(x, y, size float64) Enemy {
	return Enemy{Pos: core.V(x, y), Alive: true, Size: size, Heading: East}
}

// Update rolls [1, MoveRoll) and steps toward target when the roll equals
// MoveHit. With the defaults that is about one tick in 29.
func (e *Enemy) Update(target core.Vec2, rng *rand.Rand, cfg config.EnemyConfig) {
	if uniformInt(rng, 1, cfg.MoveRoll) == cfg.MoveHit {
		e.moveToward(target, cfg.Speed)
	}
}

// moveToward faces the dominant axis of the direction to target and takes
// one axis-aligned step. Ties go to the horizontal axis.
func (e *Enemy) moveToward(target core.Vec2, speed float64) {
	d := e.Pos.Sub(target).Normalize()
	if d.X == 0 && d.Y == 0 {
		return
	}

	if math.Abs(d.X) >= math.Abs(d.Y) {
		if d.X > 0 {
			e.Heading = West
		} else {
			e.Heading = East
		}
	} else {
		if d.Y > 0 {
			e.Heading = North
		} else {
			e.Heading = South
		}
	}
	e.Pos = e.Pos.Add(e.Heading.Delta(speed))
}

// HitsWall reports whether the robot's box touches w.
func (e Enemy) HitsWall(w Wall) bool {
	return w.overlapsBox(e.Pos, e.Size, e.Size)
}
