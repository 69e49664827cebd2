package crossing

// Sprite names known to the game. The host's sprite loader must provide all of them
// before a Game is started.
const (
	SpritePlayer = "char-horn-girl"
	SpriteEnemy  = "enemy-bug"
	SpriteGem    = "gem-orange"
	SpriteWater  = "water-block"
	SpriteStone  = "stone-block"
	SpriteGrass  = "grass-block"
)

// SpriteNames returns every sprite the game and its renderer need.
func SpriteNames() []string {
	return []string{
		SpriteStone,
		SpriteWater,
		SpriteGrass,
		SpriteEnemy,
		SpritePlayer,
		SpriteGem,
	}
}

// Renderer draws the game. The game calls it; it never feeds state back.
// Coordinates are logical field pixels.
type Renderer interface {
	DrawBackground()
	DrawEntity(sprite string, x, y float64)
	DrawHUD(score int, timer float64)
	DrawStartScreen()
	DrawPausedOverlay()
	DrawGameOverOverlay()
}

// Cue is a fire-and-forget notification about a state transition,
// consumed by audio or any other observer.
type Cue int

const (
	CueMusicStart Cue = iota // Entered active play
	CueMusicStop             // Left active play through the play toggle or game over
	CuePause                 // Active play paused
	CueResume                // Active play resumed
	CueCollision             // An enemy caught the player
	CuePickup                // Gem collected
	CueCrossing              // Goal row reached
	CueTimeout               // Countdown ran out
	CueGameOver              // Terminal state entered
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueMusicStart:
		return "music-start"
	case CueMusicStop:
		return "music-stop"
	case CuePause:
		return "pause"
	case CueResume:
		return "resume"
	case CueCollision:
		return "collision"
	case CuePickup:
		return "pickup"
	case CueCrossing:
		return "crossing"
	case CueTimeout:
		return "timeout"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// CueSink receives cues. Implementations must not block.
type CueSink interface {
	Cue(c Cue)
}

// CueFunc adapts a function to CueSink.
type CueFunc func(c Cue)

// Cue calls f(c).
func (f CueFunc) Cue(c Cue) { f(c) }

type nopSink struct{}

func (nopSink) Cue(Cue) {}
