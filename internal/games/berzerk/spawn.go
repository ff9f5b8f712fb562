package berzerk

import (
	"math/rand"

	"github.com/vovakirdan/tui-berzerk/internal/core"
)

// maxRedraws bounds rejection sampling. The redraw region is only partly
// reserved, so in practice a handful of draws suffice.
const maxRedraws = 10000

// RandomPlacement picks one of four wall-free regions uniformly and draws a
// point in it, redrawing from the left strip while the point falls in the
// reserved spawn zone. Robots and player relocation share this function.
func RandomPlacement(rng *rand.Rand, a Arena) core.Vec2 {
	w, h := a.W, a.H
	var p core.Vec2

	switch rng.Intn(4) {
	case 0: // left
		p = core.V(uniformFloat(rng, 45, w/4-20), uniformFloat(rng, 40, h-135))
	case 1: // top
		p = core.V(uniformFloat(rng, w/4+50, w/4*3), uniformFloat(rng, 40, h/4))
	case 2: // right
		p = core.V(uniformFloat(rng, w/4*3+50, w-50), uniformFloat(rng, 40, h-135))
	default: // bottom
		p = core.V(uniformFloat(rng, w/4+50, w/4*3), uniformFloat(rng, h/4*3, h-135))
	}

	reserved := ReservedZone(a)
	for i := 0; reserved.Contains(p); i++ {
		if i == maxRedraws {
			// Fall back to the reserved zone's right edge, which is outside it.
			return core.V(reserved.X1, p.Y)
		}
		p = core.V(uniformFloat(rng, 45, w/4-10), uniformFloat(rng, 40, h-135))
	}
	return p
}

// uniformFloat draws from [lo, hi). An empty range collapses to lo.
func uniformFloat(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// uniformInt draws from [lo, hi). An empty range collapses to lo.
func uniformInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}
