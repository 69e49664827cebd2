package crossing

import (
	"math/rand"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

// Gem is the single bonus pickup. Collecting it parks it off the field until
// the next regeneration; it is never removed.
type Gem struct {
	X   float64
	Y   float64
	cfg config.GemConfig
}

func newGem(cfg config.GemConfig, rng *rand.Rand) Gem {
	g := Gem{cfg: cfg}
	g.Regenerate(rng)
	return g
}

// Regenerate moves the gem to a uniformly chosen lane slot.
func (g *Gem) Regenerate(rng *rand.Rand) {
	g.X = g.cfg.Xs[rng.Intn(len(g.cfg.Xs))]
	g.Y = g.cfg.Ys[rng.Intn(len(g.cfg.Ys))]
}

// Hide parks the gem at the off-field sentinel.
func (g *Gem) Hide() {
	g.X = g.cfg.HiddenX
	g.Y = g.cfg.HiddenY
}

// Hidden reports whether the gem is parked off the field.
func (g Gem) Hidden() bool {
	return g.X == g.cfg.HiddenX && g.Y == g.cfg.HiddenY
}

// InSlot reports whether the gem sits on one of the configured slots.
func (g Gem) InSlot() bool {
	return contains(g.cfg.Xs, g.X) && contains(g.cfg.Ys, g.Y)
}

// Sprite implements entity.
func (g Gem) Sprite() string { return SpriteGem }

// Position implements entity.
func (g Gem) Position() (float64, float64) { return g.X, g.Y }

func contains(vals []float64, v float64) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}
