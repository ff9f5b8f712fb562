package berzerk

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-berzerk/internal/core"
)

func TestLayout(t *testing.T) {
	walls := Layout(Arena{W: 900, H: 600})
	if len(walls) != 9 {
		t.Fatalf("expected 9 walls, got %d", len(walls))
	}

	expected := []Wall{
		{5, 5, 30, 525},
		{30, 5, 325, 30},
		{575, 5, 895, 30},
		{870, 25, 895, 525},
		{25, 500, 325, 525},
		{575, 500, 895, 525},
		{225, 150, 250, 375},
		{675, 150, 700, 375},
		{250, 250, 675, 275},
	}
	for i, w := range expected {
		if walls[i] != w {
			t.Errorf("wall %d = %+v, expected %+v", i, walls[i], w)
		}
		if walls[i].Width() <= 0 || walls[i].Height() <= 0 {
			t.Errorf("wall %d has no area: %+v", i, walls[i])
		}
	}
}

func TestExitZone(t *testing.T) {
	a := Arena{W: 900, H: 600}
	z := ExitZone(a)

	tests := []struct {
		name     string
		p        core.Vec2
		expected bool
	}{
		{"center of exit", core.V(450, 15), true},
		{"left edge is exclusive", core.V(325, 15), false},
		{"right edge is exclusive", core.V(575, 15), false},
		{"top edge is exclusive", core.V(450, 5), false},
		{"below exit", core.V(450, 30), false},
		{"spawn point", SpawnPoint(a), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := z.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestReservedZoneSurroundsSpawn(t *testing.T) {
	a := Arena{W: 900, H: 600}
	if !ReservedZone(a).Contains(SpawnPoint(a)) {
		t.Error("spawn point should be inside the reserved zone")
	}
}

func TestRandomPlacementAvoidsReservedZone(t *testing.T) {
	arenas := []Arena{
		{W: 900, H: 600},
		{W: 480, H: 560},
		{W: 1600, H: 1200},
	}

	for _, a := range arenas {
		reserved := ReservedZone(a)
		for seed := int64(0); seed < 20; seed++ {
			rng := rand.New(rand.NewSource(seed))
			for range 500 {
				p := RandomPlacement(rng, a)
				if reserved.Contains(p) {
					t.Fatalf("arena %vx%v seed %d: placement %v inside reserved zone", a.W, a.H, seed, p)
				}
				if p.X < 0 || p.X > a.W || p.Y < 0 || p.Y > a.H {
					t.Fatalf("arena %vx%v seed %d: placement %v outside arena", a.W, a.H, seed, p)
				}
			}
		}
	}
}

func TestRandomPlacementUsesAllRegions(t *testing.T) {
	a := Arena{W: 900, H: 600}
	rng := rand.New(rand.NewSource(42))

	var left, top, right, bottom int
	for range 2000 {
		p := RandomPlacement(rng, a)
		switch {
		case p.X < a.W/4:
			left++
		case p.X >= a.W/4*3+50:
			right++
		case p.Y < a.H/4:
			top++
		case p.Y >= a.H/4*3:
			bottom++
		default:
			t.Fatalf("placement %v is in no region", p)
		}
	}

	for name, n := range map[string]int{"left": left, "top": top, "right": right, "bottom": bottom} {
		if n < 300 {
			t.Errorf("region %s used %d times out of 2000, expected about 500", name, n)
		}
	}
}

func TestUniformRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if got := uniformFloat(rng, 10, 10); got != 10 {
		t.Errorf("empty float range should collapse to lower bound, got %f", got)
	}
	if got := uniformFloat(rng, 10, 5); got != 10 {
		t.Errorf("inverted float range should collapse to lower bound, got %f", got)
	}
	if got := uniformInt(rng, 3, 3); got != 3 {
		t.Errorf("empty int range should collapse to lower bound, got %d", got)
	}

	for range 1000 {
		if v := uniformInt(rng, 1, 30); v < 1 || v >= 30 {
			t.Fatalf("uniformInt(1, 30) = %d out of range", v)
		}
		if v := uniformFloat(rng, 40, 465); v < 40 || v >= 465 {
			t.Fatalf("uniformFloat(40, 465) = %f out of range", v)
		}
	}
}
