package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

var flagBoardPlayer string

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Interactive scoreboard",
	Long: `Browse the run history in a table.

Tab switches between the top runs and the recent runs of one player.

Examples:
  crossing board
  crossing board --player alice`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func init() {
	boardCmd.Flags().StringVar(&flagBoardPlayer, "player", "", "Player for the recent runs view (default: current user)")
}

func runBoard(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	player := flagBoardPlayer
	if player == "" {
		player = playerName()
	}

	runErr := tui.RunScoreboard(store, player, width, height)
	store.Close()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
