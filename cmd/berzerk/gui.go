package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-berzerk/internal/config"
	"github.com/vovakirdan/tui-berzerk/internal/cue"
	"github.com/vovakirdan/tui-berzerk/internal/platform/desktop"
)

var flagScale float64

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play Berzerk in a desktop window",
	Long: `Open a window showing the full arena.

The window reports key releases, so walking stops as soon as the
direction key is let go.

Controls:
  Arrows/WASD  - Face and walk while held
  Space/F      - Fire
  P            - Pause
  R            - Restart
  Esc/Q        - Close

Examples:
  berzerk gui
  berzerk gui --scale 1.5 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func init() {
	guiCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale relative to the arena size")
}

func runGUI(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr, "berzerk-gui")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadWithPreset(flagConfig, flagDifficulty)
	if err != nil {
		logger.Fatal("cannot load config", "err", err)
	}

	sinks := flagCues
	if sinks == "" {
		sinks = cfg.Audio.Sinks
	}
	d, err := cue.Open(sinks, cue.Env{Logger: logger, Out: os.Stdout, Volume: cfg.Audio.Volume}, cfg.Audio.MaxInFlight)
	if err != nil {
		logger.Fatal("cannot open cue sinks", "err", err)
	}

	store := openStore(logger)

	runErr := desktop.Run(desktop.Options{
		Config:     cfg,
		Trigger:    d,
		Seed:       flagSeed,
		TPS:        flagFPS,
		Scale:      flagScale,
		Store:      store,
		Difficulty: string(cfg.Difficulty.Preset),
		Logger:     logger,
	})

	drain(d)
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Fatal("window error", "err", runErr)
	}
}
