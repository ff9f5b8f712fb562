// Package cue carries discrete game events ("cues") from the simulation to
// sensory feedback sinks such as synthesized audio or the terminal bell.
//
// The simulation only sees the Trigger interface. Playback happens on
// background goroutines owned by a Dispatcher and never blocks a tick.
package cue

import "fmt"

// ID identifies a cue. The numeric values are stable and shared by all sinks.
type ID int

const (
	PlayerFire     ID = 0
	PlayerHit      ID = 1
	EnemyKilled    ID = 2
	EnemyFire      ID = 3
	PlayerDefeated ID = 4
)

// allCues lists every cue in id order.
var allCues = []ID{PlayerFire, PlayerHit, EnemyKilled, EnemyFire, PlayerDefeated}

// String returns the cue name.
func (id ID) String() string {
	switch id {
	case PlayerFire:
		return "player_fire"
	case PlayerHit:
		return "player_hit"
	case EnemyKilled:
		return "enemy_killed"
	case EnemyFire:
		return "enemy_fire"
	case PlayerDefeated:
		return "player_defeated"
	default:
		return fmt.Sprintf("cue(%d)", int(id))
	}
}

// Trigger receives cues from the simulation. Implementations must return
// promptly; the caller is the tick loop.
type Trigger interface {
	Trigger(id ID)
}

// TriggerFunc adapts a function to the Trigger interface.
type TriggerFunc func(id ID)

// Trigger calls f(id).
func (f TriggerFunc) Trigger(id ID) { f(id) }

// Sink renders a single cue. Play may block for the duration of the sound.
type Sink interface {
	Name() string
	Play(id ID)
}

// Nop is a trigger that discards every cue.
var Nop Trigger = TriggerFunc(func(ID) {})

// Multi fans a cue out to several sinks in order.
type Multi []Sink

// Name returns the joined sink names.
func (m Multi) Name() string {
	name := ""
	for i, s := range m {
		if i > 0 {
			name += ","
		}
		name += s.Name()
	}
	return name
}

// Play plays the cue on every sink.
func (m Multi) Play(id ID) {
	for _, s := range m {
		s.Play(id)
	}
}
