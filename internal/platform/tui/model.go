package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/crossing"
	"github.com/vovakirdan/tui-crossing/internal/sprites"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

// Options configure one game host.
type Options struct {
	Game    config.CrossingConfig
	Runtime core.RuntimeConfig
	Player  string           // Name stored with finished runs
	Store   *storage.Store   // Optional
	Sprites *sprites.Loader  // Required
	Cues    crossing.CueSink // Optional, e.g. the audio engine
	Logger  *log.Logger      // Optional
}

// spritesReadyMsg is sent once the loader has resolved every sprite.
type spritesReadyMsg struct{}

// spritesFailedMsg is sent when a sprite is missing from the catalog.
type spritesFailedMsg struct{ err error }

// Model is the Bubble Tea model hosting one crossing game at a time.
type Model struct {
	opts     Options
	game     *crossing.Game
	screen   *core.Screen
	canvas   *screenRenderer
	keys     *KeyMapper
	logger   *log.Logger
	width    int
	height   int
	ready    bool
	ticking  bool
	phase    crossing.Phase
	started  time.Time
	runSaved bool
	loadErr  error
	quitting bool
	games    int
}

// NewModel creates a host. The game itself is created once sprites are loaded.
func NewModel(opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	if opts.Player == "" {
		opts.Player = "player"
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(ScreenWidth, ScreenHeight)
	return Model{
		opts:   opts,
		screen: screen,
		canvas: newScreenRenderer(screen, opts.Sprites, opts.Game),
		keys:   NewKeyMapper(),
		logger: logger,
		width:  opts.Runtime.ScreenW,
		height: opts.Runtime.ScreenH,
	}
}

// Init starts loading sprites. Ticks begin once they are ready.
func (m Model) Init() tea.Cmd {
	return loadSpritesCmd(m.opts.Sprites)
}

func loadSpritesCmd(l *sprites.Loader) tea.Cmd {
	return func() tea.Msg {
		var msg tea.Msg
		if err := l.LoadAll(crossing.SpriteNames(), func() { msg = spritesReadyMsg{} }); err != nil {
			return spritesFailedMsg{err: err}
		}
		return msg
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spritesReadyMsg:
		m.ready = true
		m.startGame(time.Now())
		m.ticking = true
		return m, tickCmd(m.opts.Runtime.TickRate)

	case spritesFailedMsg:
		m.loadErr = msg.err
		m.logger.Error("sprite loading failed", "error", msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// startGame creates a fresh game. Each restart gets its own seed.
func (m *Model) startGame(now time.Time) {
	seed := m.opts.Runtime.Seed + int64(m.games)
	m.games++

	m.game = crossing.New(m.opts.Game, seed, now)
	m.game.SetCueSink(m.opts.Cues)
	m.phase = m.game.Phase()
	m.started = now
	m.runSaved = false
	m.logger.Debug("game started", "seed", seed, "player", m.opts.Player)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.game == nil {
		return m, nil
	}

	if action == core.ActionRestart {
		if m.game.Phase() != crossing.PhaseOver {
			return m, nil
		}
		m.startGame(time.Now())
		if !m.ticking {
			m.ticking = true
			return m, tickCmd(m.opts.Runtime.TickRate)
		}
		return m, nil
	}

	m.game.HandleInput(action)
	m.notePhase()
	return m, nil
}

// handleTick runs one frame and reschedules unless the game has ended.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.game == nil {
		m.ticking = false
		return m, nil
	}

	res := m.game.Tick(now)
	m.notePhase()
	if res.Continue {
		return m, tickCmd(m.opts.Runtime.TickRate)
	}

	m.ticking = false
	m.saveRun(now)
	return m, nil
}

func (m *Model) notePhase() {
	if p := m.game.Phase(); p != m.phase {
		m.logger.Debug("phase changed", "from", m.phase, "to", p, "tick", m.game.Ticks(), "score", m.game.Snapshot().Score)
		m.phase = p
	}
}

// saveRun persists the finished game once. Failures are logged, not fatal.
func (m *Model) saveRun(now time.Time) {
	if m.runSaved {
		return
	}
	m.runSaved = true
	if m.opts.Store == nil {
		return
	}

	snap := m.game.Snapshot()
	run := storage.NewRun(m.opts.Player, snap.Score, snap.Stats, now.Sub(m.started))
	id, err := m.opts.Store.SaveRun(run)
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "id", id, "peak", run.Peak, "crossings", run.Crossings)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	if m.game == nil {
		return
	}
	m.game.Render(m.canvas)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".crossing", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("crossing_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current frame centred in the terminal.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var frame string
	switch {
	case m.loadErr != nil:
		frame = fmt.Sprintf("cannot start: %v\n\npress q to quit", m.loadErr)
	case !m.ready || m.game == nil:
		frame = "loading sprites..."
	default:
		m.game.Render(m.canvas)
		frame = RenderScreen(m.screen)
	}

	if m.width <= 0 || m.height <= 0 {
		return frame
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
}

// Game returns the running game, or nil before sprites are ready.
func (m Model) Game() *crossing.Game {
	return m.game
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
