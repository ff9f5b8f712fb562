package berzerk

import "github.com/vovakirdan/tui-berzerk/internal/core"

// Wall is an axis-aligned obstacle given by two opposite corners.
// X0 < X1 and Y0 < Y1 are expected but not enforced.
type Wall struct {
	X0, Y0, X1, Y1 float64
}

// Width returns the horizontal extent of the wall.
func (w Wall) Width() float64 { return w.X1 - w.X0 }

// Height returns the vertical extent of the wall.
func (w Wall) Height() float64 { return w.Y1 - w.Y0 }

// overlapsBox reports whether a box with top-left corner pos and the given
// size touches the wall. Touching edges count as overlap.
func (w Wall) overlapsBox(pos core.Vec2, bw, bh float64) bool {
	return pos.X+bw >= w.X0 && w.X1 >= pos.X &&
		pos.Y+bh >= w.Y0 && w.Y1 >= pos.Y
}

// Zone is an open rectangle used for the exit and the reserved spawn area.
type Zone struct {
	X0, Y0, X1, Y1 float64
}

// Contains reports whether p lies strictly inside the zone.
func (z Zone) Contains(p core.Vec2) bool {
	return p.X > z.X0 && p.X < z.X1 && p.Y > z.Y0 && p.Y < z.Y1
}
