package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// resolvePlayerLasers scans every player laser against every enemy in
// store order. A laser destroys at most one enemy: on its first overlap
// both are removed, the score grows and the laser's scan ends.
func (s *Session) resolvePlayerLasers() int {
	kills := 0
	for _, l := range s.store.PlayerLasers() {
		lb := l.Box(s.cfg.Lasers)
		for _, e := range s.store.Enemies() {
			if !core.Overlaps(lb, s.enemyBox(e)) {
				continue
			}
			s.store.RemoveProjectile(l.ID)
			s.store.RemoveEnemy(e.ID)
			s.score += s.cfg.Enemies.Score
			kills++
			break
		}
	}
	return kills
}

// resolveEnemyLasers tests enemy lasers against the ship. Each hit removes
// the laser and costs a life; the scan stops once the round is over.
func (s *Session) resolveEnemyLasers() int {
	hits := 0
	for _, l := range s.store.EnemyLasers() {
		if s.phase != PhasePlaying {
			break
		}
		if !core.Overlaps(l.Box(s.cfg.Lasers), s.player.Box(s.cfg.Player)) {
			continue
		}
		s.store.RemoveProjectile(l.ID)
		s.LoseLife()
		hits++
	}
	return hits
}
