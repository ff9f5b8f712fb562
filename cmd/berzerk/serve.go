package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-berzerk/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Berzerk SSH server",
	Long: `Host Berzerk over SSH. Every connection gets its own title screen and
game, and all players share one scores database.

Cues ring the player's terminal bell unless --cues says otherwise; audio
sinks would play on the server. The host key is read from --host-key or
generated at ~/.berzerk/host_key on first start.

Examples:
  berzerk serve                        # :23234, generated host key
  berzerk serve --ssh :2222            # another port
  berzerk serve --max-sessions 8       # the ninth player is turned away
  berzerk serve --difficulty hard      # preselect hard in every menu

Players connect with:
  ssh -t <host> -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", defaults.MaxSessions, "Maximum concurrent players (0 = unlimited)")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr, "berzerk-ssh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		MaxSessions: flagMaxSessions,
		TickRate:    flagFPS,
		Difficulty:  flagDifficulty,
		Setup:       gameSetup(logger),
		Logger:      logger,
	})
	if err != nil {
		logger.Fatal("cannot create server", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Berzerk SSH server on %s, Ctrl+C to stop\n", server.Addr())
	if err := server.ListenAndServe(ctx); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}
