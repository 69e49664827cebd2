// Package crossing implements the bug-crossing game: a hero walks from the
// grass at the bottom to the water at the top while bugs run across the stone
// lanes in between.
//
// The package is pure game logic. It never reads the clock, the keyboard or
// the terminal itself: the host passes timestamps to Tick and actions to
// HandleInput, and receives drawing calls through Renderer and sound cues
// through CueSink.
package crossing

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

// Stats are per-game counters collected for the run history.
type Stats struct {
	Crossings  int
	Gems       int
	Collisions int
	Timeouts   int
	Peak       int // Highest score reached
}

// TickResult tells the host what to do after a tick.
type TickResult struct {
	Phase    Phase
	DT       float64 // Delta the tick was computed with
	Continue bool    // False once the game is over; the host stops scheduling ticks
}

// entity is anything drawn as a single sprite.
type entity interface {
	Sprite() string
	Position() (x, y float64)
}

// Game owns all state of one play session.
type Game struct {
	cfg     config.CrossingConfig
	rng     *rand.Rand
	clock   *Clock
	state   State
	player  Player
	enemies []Enemy
	gem     Gem
	stats   Stats
	cues    CueSink
	ticks   uint64
}

// New creates a game on the start screen. seed drives enemy spawns and gem
// placement; start is the timestamp the first frame delta is measured from.
func New(cfg config.CrossingConfig, seed int64, start time.Time) *Game {
	rng := rand.New(rand.NewSource(seed))

	enemies := make([]Enemy, 0, len(cfg.Enemies.Lanes))
	for _, lane := range cfg.Enemies.Lanes {
		enemies = append(enemies, newEnemy(lane, cfg.Enemies, rng))
	}

	return &Game{
		cfg:     cfg,
		rng:     rng,
		clock:   NewClock(start, cfg.Loop.MaxDelta),
		state:   newState(cfg.Timer.Seconds),
		player:  newPlayer(cfg.Player),
		enemies: enemies,
		gem:     newGem(cfg.Gems, rng),
		cues:    nopSink{},
	}
}

// SetCueSink routes cues to s. A nil sink discards them.
func (g *Game) SetCueSink(s CueSink) {
	if s == nil {
		s = nopSink{}
	}
	g.cues = s
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.state.Phase()
}

// Tick runs one frame. A score that went negative since the last tick ends
// the game; otherwise the world advances only while play is active.
func (g *Game) Tick(now time.Time) TickResult {
	dt := g.clock.Tick(now)

	if g.state.Over {
		return TickResult{Phase: PhaseOver, DT: dt}
	}
	if g.state.Lost() {
		g.state.end()
		g.cues.Cue(CueMusicStop)
		g.cues.Cue(CueGameOver)
		return TickResult{Phase: PhaseOver, DT: dt}
	}

	g.ticks++
	if g.state.Phase() == PhaseActive {
		g.Advance(dt)
	}
	return TickResult{Phase: g.state.Phase(), DT: dt, Continue: true}
}

// Advance steps the world by dt seconds regardless of phase. The order is
// fixed: enemies, collisions, pickup, countdown, timeout. A losing hit skips
// the pickup.
func (g *Game) Advance(dt float64) {
	for i := range g.enemies {
		if g.enemies[i].Update(dt, g.cfg.Field.PlayWidth) {
			g.enemies[i].Reset(g.cfg.Enemies, g.rng)
		}
	}

	g.checkCollisions()
	if !g.state.Lost() {
		g.checkPickup()
	}

	g.state.CountDown(dt)
	g.checkTimer()
}

// checkTimer penalises an expired countdown and starts a new round.
func (g *Game) checkTimer() {
	if !g.state.Expired() {
		return
	}
	g.state.PenalizeTimeout(g.cfg.Scoring.Timeout)
	g.stats.Timeouts++
	g.cues.Cue(CueTimeout)
	g.resetRound()
}

// resetRound sends the player back to the start with a full timer and a new gem.
func (g *Game) resetRound() {
	g.player.Reset()
	g.state.RestartTimer()
	g.gem.Regenerate(g.rng)
}

func (g *Game) trackPeak() {
	if g.state.Score > g.stats.Peak {
		g.stats.Peak = g.state.Score
	}
}

// Render draws the current frame. The world is drawn back to front so the
// player ends up on top of enemies and the gem.
func (g *Game) Render(r Renderer) {
	phase := g.state.Phase()
	if phase == PhaseStart {
		r.DrawStartScreen()
		return
	}

	r.DrawBackground()
	for _, e := range g.entities() {
		x, y := e.Position()
		r.DrawEntity(e.Sprite(), x, y)
	}
	r.DrawHUD(g.state.Score, g.state.Timer)

	switch phase {
	case PhasePaused:
		r.DrawPausedOverlay()
	case PhaseOver:
		r.DrawGameOverOverlay()
	}
}

func (g *Game) entities() []entity {
	out := make([]entity, 0, len(g.enemies)+2)
	out = append(out, g.gem)
	for _, e := range g.enemies {
		out = append(out, e)
	}
	return append(out, g.player)
}
