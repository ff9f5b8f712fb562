// Package berzerk implements a Berzerk-style arena shooter: the player
// walks a walled room, shoots robots and leaves through the top exit once
// the room is clear. Clearing the final level wins the run.
//
// Engine holds the simulation and knows nothing about terminals or
// windows. Game adapts it to the platform's fixed-tick game contract.
package berzerk

import (
	"math/rand"

	"github.com/vovakirdan/tui-berzerk/internal/config"
	"github.com/vovakirdan/tui-berzerk/internal/core"
	"github.com/vovakirdan/tui-berzerk/internal/cue"
)

// GameID identifies the game in score storage.
const GameID = "berzerk"

// Game adapts Engine to the platform game contract.
type Game struct {
	cfg     config.BerzerkConfig
	trigger cue.Trigger
	engine  *Engine
	dt      float64
	paused  bool
}

// New creates a game. Reset must be called before the first Step.
// A nil trigger discards cues.
func New(cfg config.BerzerkConfig, trigger cue.Trigger) *Game {
	if trigger == nil {
		trigger = cue.Nop
	}
	return &Game{cfg: cfg, trigger: trigger}
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Berzerk" }

// Reset builds a fresh engine seeded from the runtime config.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.engine = NewEngine(g.cfg, rand.New(rand.NewSource(rc.Seed)), g.trigger)
	g.dt = rc.TickSeconds()
	g.paused = false
}

// Engine exposes the simulation for frontends that drive it directly.
func (g *Game) Engine() *Engine { return g.engine }

// Step applies this frame's input and advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.engine.HardReset()
		g.paused = false
	}

	if in.Has(core.ActionPause) && g.engine.Running() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRelease) {
		g.engine.ClearMoveIntent()
	}
	if h, ok := headingFor(in); ok {
		g.engine.SetHeadingAndMove(h)
	}
	if in.Has(core.ActionFire) {
		g.engine.Fire()
	}

	g.engine.Tick(g.dt)
	return core.StepResult{State: g.State()}
}

// headingFor returns the heading requested by the frame. When several
// directions arrive in one frame the last in Up, Down, Left, Right order wins.
func headingFor(in core.InputFrame) (Heading, bool) {
	var h Heading
	found := false
	for _, m := range []struct {
		action  core.Action
		heading Heading
	}{
		{core.ActionUp, North},
		{core.ActionDown, South},
		{core.ActionLeft, West},
		{core.ActionRight, East},
	} {
		if in.Has(m.action) {
			h, found = m.heading, true
		}
	}
	return h, found
}

// State returns the platform view of the session.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	s := g.engine.Session()
	return core.GameState{
		Score:    s.Score,
		Level:    s.Level,
		GameOver: s.Status != Running,
		Won:      s.Status == Won,
		Paused:   g.paused,
	}
}

// Snapshot returns a copy of the engine state.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}
