package crossing

// Phase is the derived lifecycle phase of a game.
type Phase int

const (
	PhaseStart  Phase = iota // Not playing; the start screen is shown
	PhaseActive              // Playing and not paused
	PhasePaused              // Playing but paused
	PhaseOver                // Terminal
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseActive:
		return "active"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// State is the mutable state of one game. Score and Timer only change through
// the transition methods below.
type State struct {
	Playing bool
	Paused  bool
	Over    bool // Set by the loop once the score went negative; never cleared
	Score   int
	Timer   float64 // Seconds left for the current crossing attempt

	timerStart float64
	lost       bool // A penalty took the score below zero
}

func newState(timerStart float64) State {
	return State{Timer: timerStart, timerStart: timerStart}
}

// Phase derives the lifecycle phase from the flags.
func (s State) Phase() Phase {
	switch {
	case s.Over:
		return PhaseOver
	case !s.Playing:
		return PhaseStart
	case s.Paused:
		return PhasePaused
	default:
		return PhaseActive
	}
}

// AwardCrossing adds the bonus for reaching the goal row.
func (s *State) AwardCrossing(points int) { s.Score += points }

// AwardPickup adds the bonus for collecting the gem.
func (s *State) AwardPickup(points int) { s.Score += points }

// PenalizeCollision subtracts the penalty for being caught.
func (s *State) PenalizeCollision(points int) { s.penalize(points) }

// PenalizeTimeout subtracts the penalty for running out of time.
func (s *State) PenalizeTimeout(points int) { s.penalize(points) }

func (s *State) penalize(points int) {
	s.Score -= points
	if s.Score < 0 {
		s.lost = true
	}
}

// Lost reports whether the score has been below zero since the last tick.
// Later bonuses do not undo it; the loop ends the game on the next tick.
func (s State) Lost() bool { return s.lost || s.Score < 0 }

// CountDown decrements the timer by dt while it is still positive.
func (s *State) CountDown(dt float64) {
	if s.Timer > 0 {
		s.Timer -= dt
	}
}

// RestartTimer refills the countdown.
func (s *State) RestartTimer() { s.Timer = s.timerStart }

// Expired reports whether the countdown ran out.
func (s State) Expired() bool { return s.Timer <= 0 }

// TogglePlay flips between the start screen and play.
func (s *State) TogglePlay() { s.Playing = !s.Playing }

// TogglePause flips the pause flag. It also flips on the start screen; the
// flag only takes effect once playing.
func (s *State) TogglePause() { s.Paused = !s.Paused }

func (s *State) end() { s.Over = true }
