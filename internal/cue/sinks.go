package cue

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// BellSink rings the terminal bell for cues that matter to the player.
// Works over SSH where no audio device is available.
type BellSink struct {
	mu  sync.Mutex
	out io.Writer
}

// NewBellSink creates a bell sink writing to out. A nil writer is silent.
func NewBellSink(out io.Writer) *BellSink {
	return &BellSink{out: out}
}

// Name returns "bell".
func (b *BellSink) Name() string { return "bell" }

// Play writes BEL for hits and defeat. Fire and kill cues are too frequent
// for a bell and are ignored.
func (b *BellSink) Play(id ID) {
	if b.out == nil {
		return
	}
	if id != PlayerHit && id != PlayerDefeated {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.out.Write([]byte{'\a'}) //nolint:errcheck // Best-effort bell
}

// LogSink writes one debug line per cue.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a log sink. A nil logger uses the default logger.
func NewLogSink(logger *log.Logger) *LogSink {
	if logger == nil {
		logger = log.Default()
	}
	return &LogSink{logger: logger}
}

// Name returns "log".
func (l *LogSink) Name() string { return "log" }

// Play logs the cue.
func (l *LogSink) Play(id ID) {
	l.logger.Debug("cue", "id", int(id), "name", id.String())
}
