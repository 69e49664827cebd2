package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossing/internal/audio"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
	"github.com/vovakirdan/tui-crossing/internal/sprites"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

var (
	flagMute    bool
	flagLogFile string
	flagPlayer  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game of Bug Crossing.

Controls:
  Arrows/WASD/HJKL - Move
  Enter            - Start, or return to the instructions
  Space            - Pause / resume
  R                - Play again (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Sound is synthesised and piped to pacat, pw-cat, aplay or sox when one of
them is installed. CROSSING_AUDIO_ENABLED and CROSSING_MASTER_VOLUME (0-100)
override the defaults.

Examples:
  crossing play
  crossing play --difficulty easy
  crossing play --seed 42 --mute
  crossing play --config ./my-crossing.yaml --log ./crossing.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write debug log to this file")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name stored with your runs (default: current user)")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	catalog, err := sprites.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading sprites: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for centering
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger, logFile, err := openLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	audioCfg := audio.LoadConfig()
	if flagMute {
		audioCfg.Enabled = false
	}
	engine := audio.NewEngine(audioCfg)
	if startErr := engine.Start(); startErr != nil && logger != nil {
		logger.Warn("audio unavailable", "error", startErr)
	}
	if logger != nil {
		logger.Debug("audio", "backend", engine.BackendName(), "silent", engine.Silent())
	}

	runErr := tui.Run(tui.Options{
		Game:    gameCfg,
		Runtime: runtime,
		Player:  playerName(),
		Store:   store,
		Sprites: sprites.NewLoader(catalog),
		Cues:    engine,
		Logger:  logger,
	})

	engine.Stop()
	// Close store and log before potential exit
	if store != nil {
		store.Close()
	}
	logFile.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogger opens a debug logger appending to path. With an empty path the
// logger is nil and the returned closer does nothing.
func openLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return nil, io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "crossing",
	})
	return logger, f, nil
}

func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
