package crossing

// Snapshot is a copy of the observable game state.
type Snapshot struct {
	Tick    uint64
	Phase   Phase
	Score   int
	Timer   float64
	Player  Point
	Gem     Point
	Enemies []EnemyView
	Stats   Stats
}

// Point is a position in field pixels.
type Point struct {
	X, Y float64
}

// EnemyView is the observable part of an enemy.
type EnemyView struct {
	X, Y  float64
	Speed float64
}

// Snapshot returns the current state. The result shares no memory with the game.
func (g *Game) Snapshot() Snapshot {
	enemies := make([]EnemyView, len(g.enemies))
	for i, e := range g.enemies {
		enemies[i] = EnemyView{X: e.X, Y: e.Y, Speed: e.Speed}
	}
	return Snapshot{
		Tick:    g.ticks,
		Phase:   g.state.Phase(),
		Score:   g.state.Score,
		Timer:   g.state.Timer,
		Player:  Point{X: g.player.X, Y: g.player.Y},
		Gem:     Point{X: g.gem.X, Y: g.gem.Y},
		Enemies: enemies,
		Stats:   g.stats,
	}
}

// Stats returns the counters collected so far.
func (g *Game) Stats() Stats {
	return g.stats
}

// Ticks returns the number of ticks processed before the game ended.
func (g *Game) Ticks() uint64 {
	return g.ticks
}
