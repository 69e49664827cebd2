package crossing

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type cueRecorder struct {
	cues []Cue
}

func (r *cueRecorder) Cue(c Cue) { r.cues = append(r.cues, c) }

func (r *cueRecorder) has(c Cue) bool {
	for _, got := range r.cues {
		if got == c {
			return true
		}
	}
	return false
}

type callRecorder struct {
	calls []string
}

func (r *callRecorder) DrawBackground()                        { r.calls = append(r.calls, "background") }
func (r *callRecorder) DrawEntity(sprite string, x, y float64) { r.calls = append(r.calls, sprite) }
func (r *callRecorder) DrawHUD(score int, timer float64)       { r.calls = append(r.calls, "hud") }
func (r *callRecorder) DrawStartScreen()                       { r.calls = append(r.calls, "start") }
func (r *callRecorder) DrawPausedOverlay()                     { r.calls = append(r.calls, "paused") }
func (r *callRecorder) DrawGameOverOverlay()                   { r.calls = append(r.calls, "over") }

// newActiveGame returns a game in active play with every enemy parked off the
// field and standing still.
func newActiveGame(t *testing.T) (*Game, *cueRecorder) {
	t.Helper()

	g := New(config.DefaultCrossingConfig(), 42, t0)
	rec := &cueRecorder{}
	g.SetCueSink(rec)
	if !g.HandleInput(core.ActionPlay) {
		t.Fatal("play toggle not handled on start screen")
	}
	if g.Phase() != PhaseActive {
		t.Fatalf("Phase = %v, want active", g.Phase())
	}
	parkEnemies(g)
	return g, rec
}

func parkEnemies(g *Game) {
	for i := range g.enemies {
		g.enemies[i].X = -1000
		g.enemies[i].Speed = 0
	}
}
