package crossing

import (
	"math/rand"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

// Enemy is a bug travelling right along a fixed lane.
type Enemy struct {
	X     float64
	Y     float64 // Lane, never changes
	Speed float64 // Pixels per second
	Width float64
}

// newEnemy creates an enemy on the given lane at a random off-screen start.
func newEnemy(lane float64, cfg config.EnemyConfig, rng *rand.Rand) Enemy {
	e := Enemy{Y: lane, Width: cfg.Width}
	e.Reset(cfg, rng)
	return e
}

// Update moves the enemy by dt seconds and reports whether it passed bound.
// The caller respawns enemies that report true.
func (e *Enemy) Update(dt, bound float64) bool {
	e.X += e.Speed * dt
	return e.X > bound
}

// Reset respawns the enemy off the left edge with a fresh speed.
// The spawn range is wide so enemies on the same lane enter at staggered times.
func (e *Enemy) Reset(cfg config.EnemyConfig, rng *rand.Rand) {
	e.X = float64(randInt(rng, cfg.SpawnMinX, cfg.SpawnMaxX))
	e.Speed = float64(randInt(rng, cfg.MinSpeed, cfg.MaxSpeed))
}

// RightEdge returns the x-coordinate of the enemy's right edge.
func (e Enemy) RightEdge() float64 {
	return e.X + e.Width
}

// Sprite implements entity.
func (e Enemy) Sprite() string { return SpriteEnemy }

// Position implements entity.
func (e Enemy) Position() (float64, float64) { return e.X, e.Y }

// randInt returns a uniform integer in [lo, hi].
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
