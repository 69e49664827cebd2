package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/crossing"
	"github.com/vovakirdan/tui-crossing/internal/sprites"
)

var flagShowSprites bool

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "List the sprite catalog",
	Long: `Shows every sprite in the embedded catalog and whether the game uses it.

Examples:
  crossing sprites
  crossing sprites --show`,
	Args: cobra.NoArgs,
	Run:  runSprites,
}

func init() {
	spritesCmd.Flags().BoolVar(&flagShowSprites, "show", false, "Print the glyphs of each sprite")
}

func runSprites(_ *cobra.Command, _ []string) {
	catalog, err := sprites.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	used := make(map[string]bool)
	for _, name := range crossing.SpriteNames() {
		used[name] = true
	}

	names := catalog.List()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, name := range names {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-5s  %-12s  %s\n", maxNameLen, "Name", "Size", "Color", "Used")
	fmt.Printf("  %-*s  %-5s  %-12s  %s\n", maxNameLen, "----", "----", "-----", "----")

	for _, name := range names {
		s, lookupErr := catalog.Lookup(name)
		if lookupErr != nil {
			continue
		}
		mark := ""
		if used[name] {
			mark = "yes"
		}
		fmt.Printf("  %-*s  %-5s  %-12s  %s\n", maxNameLen, name,
			fmt.Sprintf("%dx%d", s.Width(), s.Height()), s.Color, mark)

		if flagShowSprites {
			for _, row := range s.Rows {
				fmt.Printf("    |%s|\n", row)
			}
		}
	}
}
