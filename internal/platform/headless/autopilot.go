package headless

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// Autopilot is a simple bot: it sidesteps enemy lasers about to land,
// otherwise lines up under the nearest enemy, and keeps the trigger held.
type Autopilot struct {
	game      *invaders.Game
	rng       *rand.Rand
	lookahead float64 // How far above the ship a laser counts as a threat
	hesitate  int     // One in hesitate frames the bot idles; 0 never
}

// NewAutopilot creates a bot for g. The seed only drives its hesitation.
func NewAutopilot(g *invaders.Game, seed int64) *Autopilot {
	return &Autopilot{
		game:      g,
		rng:       rand.New(rand.NewSource(seed)), //#nosec G404 -- bot behaviour
		lookahead: 90,
		hesitate:  12,
	}
}

// Intent decides the next tick's input.
func (a *Autopilot) Intent() invaders.Intent {
	p := a.game.Player()
	if p == nil || !p.Alive {
		return invaders.Intent{}
	}
	cfg := a.game.Config()
	in := invaders.Intent{Fire: true}

	if a.hesitate > 0 && a.rng.Intn(a.hesitate) == 0 {
		return in
	}

	center := p.X + cfg.Player.Width/2
	if threat, ok := a.threat(p, cfg); ok {
		laser := threat.X + cfg.Lasers.Width/2
		maxX := cfg.Field.Width - cfg.Player.Width
		goRight := laser < center
		if goRight && p.X >= maxX {
			goRight = false
		} else if !goRight && p.X <= 0 {
			goRight = true
		}
		in.MoveRight = goRight
		in.MoveLeft = !goRight
		return in
	}

	target, ok := a.target(center, cfg)
	if !ok {
		return in
	}
	switch dx := target - center; {
	case dx > cfg.Player.Speed:
		in.MoveRight = true
	case dx < -cfg.Player.Speed:
		in.MoveLeft = true
	}
	return in
}

// threat returns the closest enemy laser that will land on the ship soon.
func (a *Autopilot) threat(p *invaders.Player, cfg config.InvadersConfig) (*invaders.Projectile, bool) {
	margin := cfg.Player.Speed * 2
	var best *invaders.Projectile
	for _, l := range a.game.Store().EnemyLasers() {
		if l.X+cfg.Lasers.Width < p.X-margin || l.X > p.X+cfg.Player.Width+margin {
			continue
		}
		if l.Y+cfg.Lasers.Height < p.Y-a.lookahead || l.Y > p.Y+cfg.Player.Height {
			continue
		}
		if best == nil || l.Y > best.Y {
			best = l
		}
	}
	return best, best != nil
}

// target returns the x of the enemy centre nearest the ship.
func (a *Autopilot) target(center float64, cfg config.InvadersConfig) (float64, bool) {
	best, found := 0.0, false
	for _, e := range a.game.Store().Enemies() {
		x, _ := a.game.EnemyPosition(e)
		x += cfg.Enemies.Width / 2
		if !found || math.Abs(x-center) < math.Abs(best-center) {
			best, found = x, true
		}
	}
	return best, found
}
