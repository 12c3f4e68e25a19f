package invaders

import "github.com/vovakirdan/tui-invaders/internal/config"

// Game is a session plus the per-frame step that advances it.
type Game struct {
	*Session
	tick  uint64
	kills int
	hits  int
}

// New creates a game in the Menu phase.
func New(cfg config.InvadersConfig, opts Options) *Game {
	return &Game{Session: NewSession(cfg, opts)}
}

// TickCount returns how many ticks have run since the last Start.
func (g *Game) TickCount() uint64 { return g.tick }

// Start begins a round. See Session.Start.
func (g *Game) Start() bool {
	if !g.Session.Start() {
		return false
	}
	g.tick, g.kills, g.hits = 0, 0, 0
	return true
}

// Restart returns to a fresh Menu. See Session.Restart.
func (g *Game) Restart() {
	g.Session.Restart()
	g.tick, g.kills, g.hits = 0, 0, 0
}

// Kills returns the enemies destroyed this round.
func (g *Game) Kills() int { return g.kills }

// Hits returns the enemy lasers that struck the ship this round.
func (g *Game) Hits() int { return g.hits }

// Tick runs one simulation step. Outside Playing it does nothing.
//
// Order: player, player lasers and enemies move; player lasers hit
// enemies; enemy lasers move; enemy lasers hit the player; the round is
// checked for an end; score and lives are reported if they changed.
func (g *Game) Tick(in Intent) {
	s := g.Session
	if s.phase != PhasePlaying {
		return
	}
	g.tick++

	s.player.applyIntent(in)
	s.swayX, s.swayY = s.swayAt(s.clock.Now())

	s.integratePlayer()
	s.integratePlayerLasers()
	s.integrateEnemies()

	g.kills += s.resolvePlayerLasers()

	s.integrateEnemyLasers()
	g.hits += s.resolveEnemyLasers()

	s.checkTerminal()
	s.publish()
}
