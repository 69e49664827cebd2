package crossing

import "github.com/vovakirdan/tui-crossing/internal/config"

// Player is the hero. Position is grid aligned: it only changes in whole steps.
type Player struct {
	X   float64
	Y   float64
	cfg config.PlayerConfig
}

func newPlayer(cfg config.PlayerConfig) Player {
	p := Player{cfg: cfg}
	p.Reset()
	return p
}

// Reset puts the player back on the start tile.
func (p *Player) Reset() {
	p.X = p.cfg.StartX
	p.Y = p.cfg.StartY
}

// AtStart reports whether the player stands on the start tile.
func (p Player) AtStart() bool {
	return p.X == p.cfg.StartX && p.Y == p.cfg.StartY
}

// Band returns the horizontal span used for hit-testing. It is narrower than
// the sprite so that grazing the transparent sprite edge does not count.
func (p Player) Band() (lo, hi float64) {
	return p.X + p.cfg.OffsetX, p.X + p.cfg.Width - 2*p.cfg.OffsetX
}

// MoveLeft steps left unless that would leave the field.
func (p *Player) MoveLeft() bool {
	nx := p.X - p.cfg.StepX
	if nx < p.cfg.MinX {
		return false
	}
	p.X = nx
	return true
}

// MoveRight steps right unless that would leave the field.
func (p *Player) MoveRight() bool {
	nx := p.X + p.cfg.StepX
	if nx > p.cfg.MaxX {
		return false
	}
	p.X = nx
	return true
}

// MoveDown steps down unless that would go below the start row.
func (p *Player) MoveDown() bool {
	ny := p.Y + p.cfg.StepY
	if ny > p.cfg.StartY {
		return false
	}
	p.Y = ny
	return true
}

// MoveUp steps up and reports whether the step landed on the goal row.
// A step that would overshoot the goal row lands exactly on it.
func (p *Player) MoveUp() (moved, reachedGoal bool) {
	if p.Y <= p.cfg.GoalY {
		return false, false
	}
	ny := p.Y - p.cfg.StepY
	if ny <= p.cfg.GoalY {
		p.Y = p.cfg.GoalY
		return true, true
	}
	p.Y = ny
	return true, false
}

// Sprite implements entity.
func (p Player) Sprite() string { return SpritePlayer }

// Position implements entity.
func (p Player) Position() (float64, float64) { return p.X, p.Y }
