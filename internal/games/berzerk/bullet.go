package berzerk

import "github.com/vovakirdan/tui-berzerk/internal/core"

// Bullet is a projectile fired by the player or by a robot.
// Its heading is fixed at creation.
type Bullet struct {
	Pos     core.Vec2
	Heading Heading
	Alive   bool
}

// NewBullet creates a live bullet at the firing entity's position.
func NewBullet(x, y float64, h Heading) Bullet {
	return Bullet{Pos: core.V(x, y), Heading: h, Alive: true}
}

// Advance moves the bullet one step along its heading axis.
func (b *Bullet) Advance(speed float64) {
	b.Pos = b.Pos.Add(b.Heading.Delta(speed))
}

// HitsEnemy reports whether the bullet hits the robot.
func (b Bullet) HitsEnemy(e Enemy, bulletSize float64) bool {
	return ringHit(b.Pos, e.Pos, bulletSize, e.Size)
}

// HitsPlayer reports whether the bullet hits the player. The player's box
// height is used as its size.
func (b Bullet) HitsPlayer(p Player, bulletSize float64) bool {
	return ringHit(b.Pos, p.Pos, bulletSize, p.H)
}

// HitsWall reports whether the bullet, as a square of bulletSize, touches w.
func (b Bullet) HitsWall(w Wall, bulletSize float64) bool {
	return w.overlapsBox(b.Pos, bulletSize, bulletSize)
}

// OutOf reports whether the bullet left the [0,width]x[0,height] arena.
func (b Bullet) OutOf(width, height float64) bool {
	return b.Pos.X < 0 || b.Pos.X > width || b.Pos.Y < 0 || b.Pos.Y > height
}

// ringHit treats both bodies as circles and accepts center distances d in
// [bulletSize/2 - targetSize/2, bulletSize/2 + targetSize/2], both ends
// inclusive. The comparison is done on squared distances. A negative inner
// radius places no lower bound on d.
func ringHit(bullet, target core.Vec2, bulletSize, targetSize float64) bool {
	d2 := bullet.DistSq(target)
	inner := bulletSize/2 - targetSize/2
	outer := bulletSize/2 + targetSize/2

	if d2 > outer*outer {
		return false
	}
	return inner <= 0 || d2 >= inner*inner
}
