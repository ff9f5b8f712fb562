package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-berzerk/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Berzerk in this terminal",
	Long: `Start a run directly in the terminal.

Controls:
  Arrows/WASD  - Face and walk (release is emulated after a short pause)
  Space/F      - Fire along your heading
  P            - Pause
  R            - Restart, any time
  Esc/B        - Leave (when paused or after the run)
  Ctrl+S       - Save a screenshot to ~/.berzerk/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More health, fewer robots, robots shoot less
  normal - Default rules
  hard   - Less health, robots shoot and move more
  fixed  - Robot fire rate does not rise with the level

Examples:
  berzerk play
  berzerk play --difficulty easy
  berzerk play --seed 42 --cues none
  berzerk play --config ./my-berzerk.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := fileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	launch, err := gameSetup(logger).Build(flagDifficulty, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	runErr := tui.Run(launch.Game, terminalConfig(), tui.GameOptions{
		Store:        store,
		Difficulty:   launch.Difficulty(),
		ReleaseAfter: launch.Config.Controls.ReleaseAfterTicks,
		Logger:       logger,
	})

	drain(launch.Dispatcher)
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
