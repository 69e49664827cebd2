package crossing

// EnemyHits reports whether e catches p. Only enemies on exactly the player's
// row are candidates; a hit needs the enemy's right edge strictly inside the
// player's collision band.
func EnemyHits(p Player, e Enemy) bool {
	if e.Y != p.Y {
		return false
	}
	lo, hi := p.Band()
	edge := e.RightEdge()
	return edge > lo && edge < hi
}

// PickupCollected reports whether p stands exactly on g.
func PickupCollected(p Player, g Gem) bool {
	return p.X == g.X && p.Y == g.Y
}

// checkCollisions applies every enemy hit in collection order. Each hit costs
// points independently. A hit that drives the score negative leaves the player
// where it is; the loop ends the game on the next tick.
func (g *Game) checkCollisions() {
	for i := range g.enemies {
		if !EnemyHits(g.player, g.enemies[i]) {
			continue
		}
		g.state.PenalizeCollision(g.cfg.Scoring.Collision)
		g.stats.Collisions++
		g.cues.Cue(CueCollision)
		if g.state.Lost() {
			continue
		}
		g.resetRound()
	}
}

// checkPickup collects the gem when the player stands on it.
func (g *Game) checkPickup() {
	if !PickupCollected(g.player, g.gem) {
		return
	}
	g.state.AwardPickup(g.cfg.Scoring.Gem)
	g.stats.Gems++
	g.trackPeak()
	g.gem.Hide()
	g.cues.Cue(CuePickup)
}
