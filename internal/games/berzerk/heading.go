package berzerk

import "github.com/vovakirdan/tui-berzerk/internal/core"

// Heading is one of the four cardinal directions. Arena coordinates grow
// east on X and south on Y. There are no diagonal headings.
type Heading int

const (
	East Heading = iota
	North
	West
	South
)

// String returns the heading name.
func (h Heading) String() string {
	switch h {
	case East:
		return "east"
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	default:
		return "unknown"
	}
}

// Delta returns the velocity for one step of the given speed.
func (h Heading) Delta(speed float64) core.Vec2 {
	switch h {
	case East:
		return core.V(speed, 0)
	case North:
		return core.V(0, -speed)
	case West:
		return core.V(-speed, 0)
	case South:
		return core.V(0, speed)
	default:
		return core.Vec2{}
	}
}

// Opposite returns the heading pointing the other way.
func (h Heading) Opposite() Heading {
	switch h {
	case East:
		return West
	case North:
		return South
	case West:
		return East
	default:
		return North
	}
}
