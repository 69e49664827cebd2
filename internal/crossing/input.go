package crossing

import "github.com/vovakirdan/tui-crossing/internal/core"

type inputHandler func(g *Game)

// transitions maps each phase to the actions it reacts to. Actions missing
// from a phase's map are ignored; PhaseOver reacts to nothing.
var transitions = map[Phase]map[core.Action]inputHandler{
	PhaseStart: {
		core.ActionPause: (*Game).togglePause,
		core.ActionPlay:  (*Game).togglePlay,
	},
	PhaseActive: {
		core.ActionLeft:  (*Game).moveLeft,
		core.ActionRight: (*Game).moveRight,
		core.ActionUp:    (*Game).moveUp,
		core.ActionDown:  (*Game).moveDown,
		core.ActionPause: (*Game).togglePause,
		core.ActionPlay:  (*Game).togglePlay,
	},
	PhasePaused: {
		core.ActionPause: (*Game).togglePause,
		core.ActionPlay:  (*Game).togglePlay,
	},
}

// HandleInput applies one discrete action. It reports whether the current
// phase has a handler for it. Once the score went negative no input is
// handled until the next tick ends the game.
func (g *Game) HandleInput(a core.Action) bool {
	if g.state.Lost() {
		return false
	}
	h, ok := transitions[g.state.Phase()][a]
	if !ok {
		return false
	}
	h(g)
	return true
}

func (g *Game) moveLeft()  { g.player.MoveLeft() }
func (g *Game) moveRight() { g.player.MoveRight() }
func (g *Game) moveDown()  { g.player.MoveDown() }

// moveUp scores a crossing when the step reaches the goal row. A gem on the
// landing slot is collected before the crossing resets the round.
func (g *Game) moveUp() {
	_, reached := g.player.MoveUp()
	if !reached {
		return
	}
	g.checkPickup()
	g.state.AwardCrossing(g.cfg.Scoring.Crossing)
	g.stats.Crossings++
	g.trackPeak()
	g.cues.Cue(CueCrossing)
	g.resetRound()
}

func (g *Game) togglePlay() {
	wasActive := g.state.Phase() == PhaseActive
	g.state.TogglePlay()
	switch {
	case g.state.Phase() == PhaseActive:
		g.cues.Cue(CueMusicStart)
	case wasActive:
		g.cues.Cue(CueMusicStop)
	}
}

func (g *Game) togglePause() {
	g.state.TogglePause()
	if !g.state.Playing {
		return
	}
	if g.state.Paused {
		g.cues.Cue(CuePause)
	} else {
		g.cues.Cue(CueResume)
	}
}
