package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/storage"
)

var (
	flagLimit       int
	flagScoresOf    string
	flagClearScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the top runs",
	Long: `Display the best runs, ranked by the peak score reached during the run.

Examples:
  crossing scores
  crossing scores --limit 20
  crossing scores --player alice
  crossing scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresOf, "player", "", "Show the most recent runs of one player")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the whole run history")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Println("Run history cleared.")
		return
	}

	var runs []storage.Run
	if flagScoresOf != "" {
		runs, err = store.PlayerRuns(flagScoresOf, flagLimit)
		fmt.Printf("Recent runs - %s\n", flagScoresOf)
	} else {
		runs, err = store.TopRuns(flagLimit)
		fmt.Println("High Scores - Bug Crossing")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'crossing play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %5s  %5s  %5s  %4s  %s\n", "Rank", "Player", "Peak", "Final", "Cross", "Gems", "Date")
	fmt.Printf("  %-4s  %-12s  %5s  %5s  %5s  %4s  %s\n", "----", "------", "----", "-----", "-----", "----", "----")

	// Print runs
	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %5d  %5d  %5d  %4d  %s\n",
			i+1, truncate(r.Player, 12), r.Peak, r.Score, r.Crossings, r.Gems, dateStr)
	}

	// Show best peak
	fmt.Println()
	if best, err := store.BestPeak(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
