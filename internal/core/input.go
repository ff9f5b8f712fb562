package core

// Action is a semantic input, abstracted from physical keys so that the
// terminal and the desktop window drive games the same way.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - face north and walk
	ActionDown           // S, Down arrow - face south and walk
	ActionLeft           // A, Left arrow - face west and walk
	ActionRight          // D, Right arrow - face east and walk
	ActionRelease        // Directional key released (synthesized in terminals)
	ActionFire           // Space, F - shoot along the current heading
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - hard reset, accepted in any state
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game

	numActions
)

var actionNames = [numActions]string{
	"None", "Up", "Down", "Left", "Right", "Release",
	"Fire", "Confirm", "Back", "Restart", "Quit", "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || a >= numActions {
		return "Unknown"
	}
	return actionNames[a]
}

// IsDirectional reports whether the action is one of the four movement keys.
func (a Action) IsDirectional() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// InputFrame is the set of actions triggered during one simulation tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame. ActionNone and unknown
// actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a >= numActions {
		return
	}
	f.bits |= 1 << a
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a >= numActions {
		return false
	}
	return f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Actions lists the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < numActions; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of this frame.
func (f InputFrame) Clone() InputFrame {
	return f
}
