package berzerk

import "github.com/vovakirdan/tui-berzerk/internal/core"

// Arena is the logical playfield size.
type Arena struct {
	W, H float64
}

// Layout returns the walls of the arena: an outer frame with a gap at the
// top center (the exit) and an H-shaped block in the middle.
func Layout(a Arena) []Wall {
	w, h := a.W, a.H
	hw, qw, qh := w/2, w/4, h/4

	return []Wall{
		{5, 5, 30, h - 75},                    // left vertical
		{30, 5, hw - 125, 30},                 // left top
		{hw + 125, 5, w - 5, 30},              // right top
		{w - 30, 25, w - 5, h - 75},           // right vertical
		{25, h - 100, hw - 125, h - 75},       // left bottom
		{hw + 125, h - 100, w - 5, h - 75},    // right bottom
		{qw, qh, qw + 25, qh*3 - 75},          // middle left vertical
		{qw * 3, qh, qw*3 + 25, qh*3 - 75},    // middle right vertical
		{qw + 25, h/2 - 50, qw * 3, h/2 - 25}, // middle bar
	}
}

// ExitZone is the gap in the top wall. Standing in it with no robots left
// clears the level.
func ExitZone(a Arena) Zone {
	return Zone{X0: a.W/2 - 125, Y0: 5, X1: a.W/2 + 125, Y1: 30}
}

// SpawnPoint is where the player starts every level.
func SpawnPoint(a Arena) core.Vec2 {
	return core.V(75, a.H/2)
}

// ReservedZone surrounds the spawn point. Random placement never lands here.
func ReservedZone(a Arena) Zone {
	return Zone{X0: 40, Y0: a.H/2 - 50, X1: 90, Y1: a.H/2 + 50}
}
