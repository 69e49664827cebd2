package crossing

import (
	"time"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Clock turns host frame timestamps into time deltas.
type Clock struct {
	last     time.Time
	maxDelta float64
}

// NewClock creates a clock whose first delta is measured from start.
// maxDelta caps every delta in seconds; zero disables the cap.
func NewClock(start time.Time, maxDelta float64) *Clock {
	return &Clock{last: start, maxDelta: maxDelta}
}

// Tick returns the seconds elapsed since the previous tick and remembers now.
// It must be called on every frame, paused or not, so that resuming does not
// produce a delta covering the whole pause.
func (c *Clock) Tick(now time.Time) float64 {
	dt := now.Sub(c.last).Seconds()
	c.last = now

	if dt < 0 {
		return 0
	}
	if c.maxDelta > 0 {
		return core.ClampF(dt, 0, c.maxDelta)
	}
	return dt
}
