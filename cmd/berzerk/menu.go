package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-berzerk/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Berzerk with the title screen",
	Long: `Start in interactive menu mode.

Pick a difficulty, play, and come back to the menu after each run.
The high score table is one key away.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Select
  Tab             - High scores
  Q               - Quit

Examples:
  berzerk menu
  berzerk menu --fps 30
  berzerk menu --difficulty hard --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := fileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore(logger)

	runErr := tui.RunSession(terminalConfig(), tui.SessionOptions{
		Setup:      gameSetup(logger),
		Store:      store,
		Difficulty: flagDifficulty,
		Out:        os.Stdout,
		Logger:     logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
