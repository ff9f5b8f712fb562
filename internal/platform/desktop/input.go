package desktop

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-berzerk/internal/core"
)

// keyBindings maps window keys to game actions.
var keyBindings = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeySpace:      core.ActionFire,
	ebiten.KeyF:          core.ActionFire,
	ebiten.KeyP:          core.ActionPause,
	ebiten.KeyR:          core.ActionRestart,
	ebiten.KeyEscape:     core.ActionQuit,
	ebiten.KeyQ:          core.ActionQuit,
}

// KeyEvents is one update's worth of keyboard edges plus the keys still down.
type KeyEvents struct {
	Pressed  []ebiten.Key
	Released []ebiten.Key
	Held     []ebiten.Key
}

// BuildFrame turns key edges into an input frame. Releasing a direction
// clears the movement intent; if another direction is still held the player
// keeps walking that way.
func BuildFrame(ev KeyEvents) core.InputFrame {
	frame := core.NewInputFrame()

	for _, k := range ev.Pressed {
		if a, ok := keyBindings[k]; ok {
			frame.Set(a)
		}
	}

	released := false
	for _, k := range ev.Released {
		if a, ok := keyBindings[k]; ok && a.IsDirectional() {
			released = true
		}
	}
	if !released {
		return frame
	}

	frame.Set(core.ActionRelease)
	if hasDirection(frame) {
		return frame
	}
	for _, k := range ev.Held {
		if slices.Contains(ev.Released, k) {
			continue
		}
		if a, ok := keyBindings[k]; ok && a.IsDirectional() {
			frame.Set(a)
			break
		}
	}
	return frame
}

func hasDirection(f core.InputFrame) bool {
	return f.Has(core.ActionUp) || f.Has(core.ActionDown) ||
		f.Has(core.ActionLeft) || f.Has(core.ActionRight)
}
