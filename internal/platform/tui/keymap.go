package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-berzerk/internal/core"
)

// gameKeys maps Bubble Tea key names to game actions.
var gameKeys = map[string]core.Action{
	"w":      core.ActionUp,
	"up":     core.ActionUp,
	"s":      core.ActionDown,
	"down":   core.ActionDown,
	"a":      core.ActionLeft,
	"left":   core.ActionLeft,
	"d":      core.ActionRight,
	"right":  core.ActionRight,
	" ":      core.ActionFire,
	"f":      core.ActionFire,
	"enter":  core.ActionConfirm,
	"b":      core.ActionBack,
	"esc":    core.ActionBack,
	"p":      core.ActionPause,
	"r":      core.ActionRestart,
	"q":      core.ActionQuit,
	"ctrl+c": core.ActionQuit,
}

// MenuAction is a title menu command.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// menuKeys accepts arrows, WASD and vi keys.
var menuKeys = map[string]MenuAction{
	"up":     MenuActionUp,
	"w":      MenuActionUp,
	"k":      MenuActionUp,
	"down":   MenuActionDown,
	"s":      MenuActionDown,
	"j":      MenuActionDown,
	"left":   MenuActionLeft,
	"a":      MenuActionLeft,
	"h":      MenuActionLeft,
	"right":  MenuActionRight,
	"d":      MenuActionRight,
	"l":      MenuActionRight,
	"enter":  MenuActionSelect,
	" ":      MenuActionSelect,
	"tab":    MenuActionScoreboard,
	"b":      MenuActionBack,
	"esc":    MenuActionBack,
	"q":      MenuActionQuit,
	"ctrl+c": MenuActionQuit,
}

// KeyMapper turns terminal key presses into game and menu actions.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper returns a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{game: gameKeys, menu: menuKeys}
}

// MapKey returns the game action bound to msg, ActionNone when unbound.
// isQuit is set for the keys that leave the program.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.game[msg.String()]
	return action, action == core.ActionQuit
}

// MapKeyToMenuAction returns the menu command bound to msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}

// HoldTracker synthesizes direction releases. Terminals send presses and
// auto-repeats but no key-up, so a direction counts as released once
// releaseAfter ticks pass without a repeat. With releaseAfter <= 0 a
// direction stays held until fire or another direction replaces it.
type HoldTracker struct {
	releaseAfter int
	held         core.Action
	idle         int
}

func NewHoldTracker(releaseAfter int) *HoldTracker {
	return &HoldTracker{releaseAfter: releaseAfter}
}

// Press notes a press or repeat. Only directions are tracked.
func (h *HoldTracker) Press(a core.Action) {
	if a.IsDirectional() {
		h.held, h.idle = a, 0
	}
}

// Held is the direction considered down, ActionNone when none.
func (h *HoldTracker) Held() core.Action {
	return h.held
}

// Reset drops the held direction without reporting a release.
func (h *HoldTracker) Reset() {
	h.held, h.idle = core.ActionNone, 0
}

// Tick counts one quiet tick and reports true exactly once when the held
// direction times out.
func (h *HoldTracker) Tick() bool {
	if h.held == core.ActionNone || h.releaseAfter <= 0 {
		return false
	}
	if h.idle++; h.idle <= h.releaseAfter {
		return false
	}
	h.Reset()
	return true
}
