package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-berzerk/internal/config"
	"github.com/vovakirdan/tui-berzerk/internal/games/berzerk"
	"github.com/vovakirdan/tui-berzerk/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and statistics",
	Long: `Display the best runs and overall statistics.

Use the global --difficulty flag to show a single difficulty.

Examples:
  berzerk scores
  berzerk scores --difficulty hard
  berzerk scores --limit 25
  berzerk scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", storage.DefaultLimit, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) {
	difficulty := ""
	if flagDifficulty != "" {
		p, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = string(p)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(berzerk.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All runs deleted.")
		return
	}

	if err := printScores(os.Stdout, store, difficulty, flagScoresLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the score table followed by the statistics.
func printScores(w io.Writer, store *storage.Store, difficulty string, limit int) error {
	scores, err := store.TopScores(berzerk.GameID, difficulty, limit)
	if err != nil {
		return err
	}

	title := "all difficulties"
	if difficulty != "" {
		title = difficulty
	}
	fmt.Fprintf(w, "High Scores - Berzerk (%s)\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'berzerk play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-6s  %-7s  %s\n", "Rank", "Score", "Level", "Result", "Mode", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-6s  %-7s  %s\n", "----", "-----", "-----", "------", "----", "----")
	for i, r := range scores {
		result := "lost"
		if r.Won {
			result = "WON"
		}
		fmt.Fprintf(w, "  %-4d  %-8d  %-5d  %-6s  %-7s  %s\n",
			i+1, r.Score, r.Level, result, r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(berzerk.GameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Runs: %d  Wins: %d  Best: %d  Best level: %d  Average: %.0f\n",
		stats.Runs, stats.Wins, stats.HighScore, stats.BestLevel, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Fprintf(w, "Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
