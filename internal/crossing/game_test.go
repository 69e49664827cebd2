package crossing

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

func TestNewGameStartsOnStartScreen(t *testing.T) {
	g := New(config.DefaultCrossingConfig(), 3, t0)
	snap := g.Snapshot()

	if snap.Phase != PhaseStart {
		t.Errorf("Phase = %v, want start", snap.Phase)
	}
	if snap.Player != (Point{202, 400}) {
		t.Errorf("player at %+v, want (202, 400)", snap.Player)
	}
	if snap.Timer != 10 || snap.Score != 0 {
		t.Errorf("timer/score = %v/%v, want 10/0", snap.Timer, snap.Score)
	}
	if !g.gem.InSlot() {
		t.Errorf("gem at %+v, want a slot", snap.Gem)
	}
}

func TestStartScreenDoesNotAdvance(t *testing.T) {
	g := New(config.DefaultCrossingConfig(), 3, t0)
	before := g.Snapshot().Enemies

	res := g.Tick(t0.Add(50 * time.Millisecond))
	if !res.Continue || res.Phase != PhaseStart {
		t.Fatalf("Tick() = %+v, want continue on start screen", res)
	}
	if after := g.Snapshot().Enemies; !reflect.DeepEqual(before, after) {
		t.Error("enemies moved on the start screen")
	}
}

func TestEnemyCollisionResetsRound(t *testing.T) {
	g, rec := newActiveGame(t)
	g.state.Score = 10
	g.state.Timer = 4
	g.player.X, g.player.Y = 202, 145
	g.enemies[2].X = 149
	g.gem.Hide()

	g.Advance(0)

	snap := g.Snapshot()
	if snap.Score != 5 {
		t.Errorf("Score = %d, want 5", snap.Score)
	}
	if snap.Player != (Point{202, 400}) {
		t.Errorf("player at %+v, want reset to (202, 400)", snap.Player)
	}
	if snap.Timer != 10 {
		t.Errorf("Timer = %v, want 10", snap.Timer)
	}
	if !g.gem.InSlot() {
		t.Errorf("gem at %+v, want regenerated into a slot", snap.Gem)
	}
	if snap.Stats.Collisions != 1 || !rec.has(CueCollision) {
		t.Errorf("collision not recorded: stats %+v, cues %v", snap.Stats, rec.cues)
	}
}

func TestTimerExpiryPenalty(t *testing.T) {
	g, rec := newActiveGame(t)
	g.gem.Hide()

	for i := 0; i < 19; i++ {
		g.Advance(0.5)
	}
	if g.state.Score != 0 || g.state.Timer != 0.5 {
		t.Fatalf("after 9.5s score/timer = %d/%v, want 0/0.5", g.state.Score, g.state.Timer)
	}

	g.Advance(0.5)

	snap := g.Snapshot()
	if snap.Score != -10 {
		t.Errorf("Score = %d, want -10", snap.Score)
	}
	if snap.Timer != 10 {
		t.Errorf("Timer = %v, want 10", snap.Timer)
	}
	if snap.Player != (Point{202, 400}) {
		t.Errorf("player at %+v, want (202, 400)", snap.Player)
	}
	if !g.gem.InSlot() {
		t.Errorf("gem at %+v, want regenerated into a slot", snap.Gem)
	}
	if snap.Stats.Timeouts != 1 || !rec.has(CueTimeout) {
		t.Errorf("timeout not recorded: stats %+v, cues %v", snap.Stats, rec.cues)
	}
}

func TestCrossingScores(t *testing.T) {
	g, rec := newActiveGame(t)
	g.player.X, g.player.Y = 202, 145
	g.state.Timer = 3
	g.gem.Hide()

	if !g.HandleInput(core.ActionUp) {
		t.Fatal("up not handled while active")
	}

	snap := g.Snapshot()
	if snap.Score != 5 {
		t.Errorf("Score = %d, want 5", snap.Score)
	}
	if snap.Player != (Point{202, 400}) {
		t.Errorf("player at %+v, want (202, 400)", snap.Player)
	}
	if snap.Timer != 10 {
		t.Errorf("Timer = %v, want 10", snap.Timer)
	}
	if !g.gem.InSlot() {
		t.Errorf("gem at %+v, want regenerated into a slot", snap.Gem)
	}
	if snap.Stats.Crossings != 1 || snap.Stats.Peak != 5 || !rec.has(CueCrossing) {
		t.Errorf("crossing not recorded: stats %+v, cues %v", snap.Stats, rec.cues)
	}
}

func TestGemOnGoalSlotGivesBothBonuses(t *testing.T) {
	tests := []struct {
		name   string
		column float64
	}{
		{"middle column", 202},
		{"left edge column", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, rec := newActiveGame(t)
			g.player.X, g.player.Y = tt.column, 145
			g.gem.X, g.gem.Y = tt.column, 60

			g.HandleInput(core.ActionUp)

			stats := g.Stats()
			if g.state.Score != 10 {
				t.Errorf("Score = %d, want 10", g.state.Score)
			}
			if stats.Gems != 1 || stats.Crossings != 1 {
				t.Errorf("stats = %+v, want one gem and one crossing", stats)
			}
			if !rec.has(CuePickup) || !rec.has(CueCrossing) {
				t.Errorf("cues = %v, want pickup and crossing", rec.cues)
			}
		})
	}
}

func TestPickupDuringPlay(t *testing.T) {
	g, _ := newActiveGame(t)
	g.player.X, g.player.Y = 302, 230
	g.gem.X, g.gem.Y = 302, 230

	g.Advance(0.016)

	if g.state.Score != 5 {
		t.Errorf("Score = %d, want 5", g.state.Score)
	}
	if !g.gem.Hidden() {
		t.Errorf("gem at (%v, %v), want hidden", g.gem.X, g.gem.Y)
	}

	// A hidden gem is inert.
	g.Advance(0.016)
	if g.state.Score != 5 {
		t.Errorf("Score after second tick = %d, want 5", g.state.Score)
	}
}

func TestNegativeScoreEndsGameNextTick(t *testing.T) {
	g, rec := newActiveGame(t)
	g.state.Score = 4
	g.player.X, g.player.Y = 202, 145
	g.enemies[2].X = 149
	g.gem.Hide()

	res := g.Tick(t0.Add(16 * time.Millisecond))
	if !res.Continue || g.state.Score != -1 {
		t.Fatalf("collision tick = %+v, score %d; want continue with score -1", res, g.state.Score)
	}
	if g.player.Y != 145 {
		t.Errorf("player reset to y=%v; a losing hit leaves it in place", g.player.Y)
	}

	res = g.Tick(t0.Add(32 * time.Millisecond))
	if res.Continue || res.Phase != PhaseOver {
		t.Fatalf("next Tick() = %+v, want game over", res)
	}
	if !rec.has(CueGameOver) {
		t.Errorf("cues = %v, want game-over", rec.cues)
	}

	before := g.Snapshot()
	for i := 1; i <= 10; i++ {
		if res := g.Tick(t0.Add(time.Duration(i) * time.Second)); res.Continue {
			t.Fatal("game continued after game over")
		}
	}
	if after := g.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Errorf("state changed after game over:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestLosingHitCannotBeUndone(t *testing.T) {
	tests := []struct {
		name    string
		gemX    float64 // Gem on the player's row when non-zero
		between core.Action
	}{
		{"pickup in the same tick", 202, core.ActionNone},
		{"crossing from input", 0, core.ActionUp},
		{"pickup from input", 102, core.ActionLeft},
		{"pause from input", 0, core.ActionPause},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, rec := newActiveGame(t)
			g.state.Score = 4
			g.player.X, g.player.Y = 202, 145
			g.enemies[2].X = 149
			g.gem.Hide()
			if tt.gemX != 0 {
				g.gem.X, g.gem.Y = tt.gemX, 145
			}

			res := g.Tick(t0.Add(16 * time.Millisecond))
			if !res.Continue || g.state.Score != -1 {
				t.Fatalf("hit tick = %+v, score %d; want continue with score -1", res, g.state.Score)
			}

			if tt.between != core.ActionNone && g.HandleInput(tt.between) {
				t.Errorf("%v handled after a losing hit", tt.between)
			}
			if g.state.Score != -1 {
				t.Errorf("Score = %d after the hit, want -1", g.state.Score)
			}

			res = g.Tick(t0.Add(32 * time.Millisecond))
			if res.Continue || res.Phase != PhaseOver {
				t.Fatalf("next Tick() = %+v, want game over", res)
			}
			if !rec.has(CueGameOver) {
				t.Errorf("cues = %v, want game-over", rec.cues)
			}
			if stats := g.Stats(); stats.Gems != 0 || stats.Crossings != 0 {
				t.Errorf("stats = %+v, want no gems and no crossings", stats)
			}
		})
	}
}

func TestCollisionAndTimeoutSameTick(t *testing.T) {
	g, _ := newActiveGame(t)
	g.state.Score = 3
	g.state.Timer = 0.05
	g.player.X, g.player.Y = 202, 145
	g.enemies[2].X = 149
	g.gem.Hide()

	g.Advance(0.1)

	if g.state.Score != -12 {
		t.Errorf("Score = %d, want -12 (both penalties)", g.state.Score)
	}
	stats := g.Stats()
	if stats.Collisions != 1 || stats.Timeouts != 1 {
		t.Errorf("stats = %+v, want one collision and one timeout", stats)
	}
}

func TestRenderByPhase(t *testing.T) {
	world := []string{"background", SpriteGem,
		SpriteEnemy, SpriteEnemy, SpriteEnemy, SpriteEnemy, SpriteEnemy, SpriteEnemy,
		SpritePlayer, "hud"}

	tests := []struct {
		name  string
		setup func(g *Game)
		want  []string
	}{
		{"start", func(g *Game) {}, []string{"start"}},
		{"active", func(g *Game) { g.HandleInput(core.ActionPlay) }, world},
		{"paused", func(g *Game) {
			g.HandleInput(core.ActionPlay)
			g.HandleInput(core.ActionPause)
		}, append(append([]string{}, world...), "paused")},
		{"over", func(g *Game) {
			g.HandleInput(core.ActionPlay)
			g.state.Score = -1
			g.Tick(t0.Add(time.Millisecond))
		}, append(append([]string{}, world...), "over")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(config.DefaultCrossingConfig(), 5, t0)
			tt.setup(g)

			r := &callRecorder{}
			g.Render(r)
			if !reflect.DeepEqual(r.calls, tt.want) {
				t.Errorf("calls = %v, want %v", r.calls, tt.want)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultCrossingConfig()
	g1 := New(cfg, 12345, t0)
	g2 := New(cfg, 12345, t0)

	inputs := map[int]core.Action{
		0:   core.ActionPlay,
		20:  core.ActionUp,
		40:  core.ActionLeft,
		60:  core.ActionUp,
		80:  core.ActionPause,
		90:  core.ActionPause,
		120: core.ActionUp,
	}

	for i := 0; i < 600; i++ {
		if a, ok := inputs[i]; ok {
			g1.HandleInput(a)
			g2.HandleInput(a)
		}
		now := t0.Add(time.Duration(i+1) * 16 * time.Millisecond)
		g1.Tick(now)
		g2.Tick(now)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := New(config.DefaultCrossingConfig(), 8, t0)
	snap := g.Snapshot()
	snap.Enemies[0].X = 9999

	if g.enemies[0].X == 9999 {
		t.Error("snapshot shares enemy storage with the game")
	}
}

func TestStateLossSurvivesBonuses(t *testing.T) {
	s := newState(10)
	s.AwardCrossing(5)
	s.PenalizeTimeout(10)
	if !s.Lost() {
		t.Fatal("Lost() = false after the score went negative")
	}
	s.AwardPickup(5)
	s.AwardCrossing(5)
	if s.Score != 5 || !s.Lost() {
		t.Errorf("Score = %d, Lost() = %v; want 5 and still lost", s.Score, s.Lost())
	}

	fresh := newState(10)
	fresh.AwardCrossing(5)
	fresh.PenalizeCollision(5)
	if fresh.Lost() {
		t.Error("Lost() = true at score zero")
	}
}
