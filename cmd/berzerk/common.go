package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-berzerk/internal/core"
	"github.com/vovakirdan/tui-berzerk/internal/cue"
	"github.com/vovakirdan/tui-berzerk/internal/platform/tui"
	"github.com/vovakirdan/tui-berzerk/internal/storage"
)

// drainTimeout bounds how long exit waits for cues still playing.
const drainTimeout = 2 * time.Second

// newLogger builds the shared logger at --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens ~/.berzerk/berzerk.log for appending. The alt screen
// owns the terminal, so interactive modes log there instead of stderr.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".berzerk")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "berzerk.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// fileLogger returns a logger writing to the log file, or discarding when
// the file cannot be opened. The returned func closes the file.
func fileLogger() (*log.Logger, func(), error) {
	f, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, logging disabled\n", err)
		logger, lerr := newLogger(io.Discard, "berzerk")
		return logger, func() {}, lerr
	}
	logger, err := newLogger(f, "berzerk")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// openStore opens the scores database. Games still work without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// terminalConfig returns the runtime config for the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func gameSetup(logger *log.Logger) tui.GameSetup {
	return tui.GameSetup{
		ConfigPath: flagConfig,
		Cues:       flagCues,
		Logger:     logger,
	}
}

// drain lets cues that are still playing finish before the process exits.
func drain(d *cue.Dispatcher) {
	if d == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	//nolint:errcheck // Best-effort, exit proceeds after the timeout
	d.Drain(ctx)
}
