package berzerk

// cueGate throttles gated cues. One gate is shared by every cue, and it
// also gates enemy fire.
type cueGate struct {
	remaining float64
	period    float64
}

func newCueGate(period float64) cueGate {
	return cueGate{period: period}
}

// Ready reports whether the cooldown has run out.
func (g *cueGate) Ready() bool { return g.remaining <= 0 }

// Arm restarts the cooldown.
func (g *cueGate) Arm() { g.remaining = g.period }

// Disarm makes the gate ready immediately.
func (g *cueGate) Disarm() { g.remaining = 0 }

// Elapse counts down while the gate is armed.
func (g *cueGate) Elapse(dt float64) {
	if g.remaining > 0 {
		g.remaining -= dt
	}
}
