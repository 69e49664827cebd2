// crossing is a Frogger-style bug crossing game for the terminal.
//
// Usage:
//
//	crossing play            - Play in this terminal
//	crossing serve           - Start SSH server for remote play
//	crossing scores          - Print the top runs
//	crossing board           - Interactive scoreboard
//	crossing sprites         - List the sprite catalog
//	crossing config          - Print the default game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.crossing/runs.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Bug Crossing - get your hero across the road",
	Long: `Bug Crossing is a terminal take on the classic road-crossing arcade game.
Dodge the bugs, grab the gems and reach the water before the timer runs out.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - Print the top runs
  board    - Interactive scoreboard
  sprites  - List the sprite catalog
  config   - Print the default game config

Examples:
  crossing play
  crossing play --difficulty hard --mute
  crossing serve --ssh :2222
  crossing scores --limit 5`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crossing/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(spritesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves --config and --difficulty into a validated game config.
func loadGameConfig() (config.CrossingConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.CrossingConfig{}, err
	}

	cfg, err := config.LoadCrossing(flagConfig)
	if err != nil {
		return cfg, err
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("difficulty %s: %w", preset, err)
	}
	return cfg, nil
}
