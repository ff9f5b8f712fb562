// berzerk is a Berzerk-style arcade game for the terminal, a desktop window
// or an SSH server.
//
// Usage:
//
//	berzerk play             - Play in this terminal
//	berzerk menu             - Title screen with difficulty picker and scores
//	berzerk gui              - Play in a desktop window
//	berzerk serve            - Start SSH server for remote play
//	berzerk scores           - Show high scores and statistics
//	berzerk config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.berzerk/scores.db)
//	--config <path>       - Use a custom YAML configuration
//	--difficulty <name>   - easy, normal, hard or fixed
//	--cues <sinks>        - Comma-separated cue sinks: beep, bell, log, none
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagCues       string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "berzerk",
	Short: "Berzerk - shoot robots, find the exit",
	Long: `Berzerk is a maze shooter: clear each room of robots, walk out
through the exit at the top and survive until the final level.

Available commands:
  play     - Play directly in this terminal
  menu     - Title screen with difficulty picker and high scores
  gui      - Play in a desktop window with real key releases
  serve    - Start SSH server for remote play
  scores   - View high scores and statistics
  config   - Print the effective configuration

Examples:
  berzerk play
  berzerk play --difficulty hard --cues bell
  berzerk menu
  berzerk gui --scale 1.5
  berzerk serve --ssh :2222
  berzerk scores --difficulty easy`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.berzerk/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagCues, "cues", "", "Cue sinks: beep, bell, log, none (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
