package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/vovakirdan/tui-berzerk/internal/core"
	"github.com/vovakirdan/tui-berzerk/internal/storage"
)

const shutdownGrace = 10 * time.Second

type sessionIDKey struct{}

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is host:port, for example ":23234".
	Address string

	// HostKeyPath is the server key, generated on first use.
	// Empty means ~/.berzerk/host_key.
	HostKeyPath string

	// DBPath is the shared scores database.
	DBPath string

	// IdleTimeout drops connections without traffic.
	IdleTimeout time.Duration

	// MaxSessions bounds concurrent players. Zero means unlimited.
	MaxSessions int

	// TickRate is the simulation rate of every session.
	TickRate int

	// Difficulty is preselected in each session's menu.
	Difficulty string

	// Setup builds the games. An empty cue list becomes "bell" so that
	// cues ring the player's terminal instead of the server speakers.
	Setup GameSetup

	// Logger receives server and session events. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig is what `berzerk serve` starts with.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.berzerk/scores.db",
		IdleTimeout: 30 * time.Minute,
		MaxSessions: 32,
		TickRate:    60,
	}
}

// SSHServer hosts one Berzerk session per SSH connection. All sessions
// share the score store.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	slots  *semaphore.Weighted // nil when MaxSessions is 0
}

// NewSSHServer prepares the server without listening yet. A database
// that cannot be opened only disables score keeping.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "berzerk-ssh",
		})
	}
	if cfg.Setup.Cues == "" {
		cfg.Setup.Cues = "bell"
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{config: cfg, logger: cfg.Logger}
	if cfg.MaxSessions > 0 {
		s.slots = semaphore.NewWeighted(int64(cfg.MaxSessions))
	}

	// Middlewares run last to first: limit, then logging, then the program.
	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			s.loggingMiddleware,
			s.limitMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: ssh server: %w", err)
	}

	if s.store, err = storage.Open(cfg.DBPath); err != nil {
		s.logger.Warn("scores disabled", "db", cfg.DBPath, "err", err)
		s.store = nil
	}
	return s, nil
}

// hostKeyPath resolves the key location and makes sure its directory
// exists with owner-only permissions.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: host key: %w", err)
		}
		path = filepath.Join(home, ".berzerk", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: host key: %w", err)
	}
	return path, nil
}

// teaHandler starts a session program for a connection with a terminal.
// Connections without a PTY are turned away.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		wish.Fatalln(sess, "berzerk needs an interactive terminal, connect with ssh -t")
		return nil, nil
	}

	id, _ := sess.Context().Value(sessionIDKey{}).(string)
	logger := s.logger.With("session", id, "user", sess.User())
	setup := s.config.Setup
	setup.Logger = logger

	model := NewSessionModel(core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}, SessionOptions{
		Setup:      setup,
		Store:      s.store,
		Difficulty: s.config.Difficulty,
		Out:        sess,
		Renderer:   bubbletea.MakeRenderer(sess),
		Logger:     logger,
	})
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware gives each connection a uuid and logs how long it
// lasted.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		id := uuid.NewString()
		sess.Context().SetValue(sessionIDKey{}, id)
		logger := s.logger.With("session", id, "user", sess.User())

		start := time.Now()
		logger.Info("session started", "remote", sess.RemoteAddr().String())
		next(sess)
		logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
	}
}

// limitMiddleware rejects connections while MaxSessions players are on.
func (s *SSHServer) limitMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		if s.slots == nil {
			next(sess)
			return
		}
		if !s.slots.TryAcquire(1) {
			s.logger.Warn("session rejected, server full", "user", sess.User(), "max", s.config.MaxSessions)
			wish.Fatalln(sess, "server full, try again later")
			return
		}
		defer s.slots.Release(1)
		next(sess)
	}
}

// ListenAndServe serves until ctx is cancelled or the listener fails,
// then shuts the server down.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	ctx, stop := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("tui: ssh listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down")
		return s.Shutdown()
	})
	return g.Wait()
}

// Shutdown waits up to ten seconds for sessions to end, then closes the
// store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close() //nolint:errcheck // Best-effort on exit
		s.store = nil
	}
	return err
}

// Addr is the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
