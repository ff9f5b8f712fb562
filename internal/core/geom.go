// Package core holds the types shared by games and frontends: arena
// geometry, the character screen, palette colors and input frames.
// It imports neither Bubble Tea nor ebiten so simulations stay testable.
package core

import "math"

// Vec2 is a position or displacement in logical arena units.
type Vec2 struct {
	X, Y float64
}

// V builds a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// DistSq is the squared euclidean distance to o. Hit tests compare
// against squared radii so no square root is taken.
func (v Vec2) DistSq(o Vec2) float64 {
	dx, dy := v.X-o.X, v.Y-o.Y
	return dx*dx + dy*dy
}

// Normalize returns the unit vector pointing the same way as v.
// A zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := math.Hypot(v.X, v.Y)
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rect is a block of terminal cells.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }
