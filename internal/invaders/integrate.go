package invaders

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// swayAt returns the formation offset at the given time. Every enemy
// shares it, so the grid weaves as one.
func (s *Session) swayAt(now time.Time) (dx, dy float64) {
	t := now.Sub(s.epoch).Seconds()
	return math.Sin(t) * s.cfg.Enemies.AmplitudeX, math.Cos(t) * s.cfg.Enemies.AmplitudeY
}

// EnemyPosition returns where an enemy is drawn and collides this tick.
func (s *Session) EnemyPosition(e *Enemy) (x, y float64) {
	return e.BaseX + s.swayX, e.BaseY + s.swayY
}

func (s *Session) enemyBox(e *Enemy) core.Box {
	x, y := s.EnemyPosition(e)
	return core.BoxAt(x, y, s.cfg.Enemies.Width, s.cfg.Enemies.Height)
}

// applyIntent copies the sampled input onto the ship.
func (p *Player) applyIntent(in Intent) {
	p.MoveLeft = in.MoveLeft
	p.MoveRight = in.MoveRight
	p.Fire = in.Fire
}

// integratePlayer moves the ship, ticks its cooldown and fires.
// Left and right together cancel out.
func (s *Session) integratePlayer() {
	p := s.player
	speed := s.cfg.Player.Speed
	if p.MoveLeft {
		p.X -= speed
	}
	if p.MoveRight {
		p.X += speed
	}
	p.X = core.ClampF(p.X, 0, s.cfg.Field.Width-s.cfg.Player.Width)

	if p.Cooldown > 0 {
		p.Cooldown--
	}
	if p.Fire && p.Cooldown == 0 {
		x, y := p.Muzzle(s.cfg)
		s.store.SpawnProjectile(OwnerPlayer, x, y)
		p.Cooldown = s.cfg.Player.FireCooldown
	}
	s.presenter.PositionVisual(p.Visual, p.X, p.Y)
}

// integratePlayerLasers moves player lasers up and drops those past the top.
func (s *Session) integratePlayerLasers() {
	for _, l := range s.store.PlayerLasers() {
		l.Y -= s.cfg.Lasers.PlayerSpeed
		if l.Y < 0 {
			s.store.RemoveProjectile(l.ID)
			continue
		}
		s.presenter.PositionVisual(l.Visual, l.X, l.Y)
	}
}

// integrateEnemies places the formation and lets each enemy whose
// cooldown has run out fire from its bottom centre.
func (s *Session) integrateEnemies() {
	ew, eh := s.cfg.Enemies.Width, s.cfg.Enemies.Height
	lw := s.cfg.Lasers.Width
	for _, e := range s.store.Enemies() {
		x, y := s.EnemyPosition(e)
		if e.Cooldown > 0 {
			e.Cooldown--
		}
		if e.Cooldown == 0 {
			s.store.SpawnProjectile(OwnerEnemy, x+ew/2-lw/2, y+eh)
			e.Cooldown = s.drawCooldown()
		}
		s.presenter.PositionVisual(e.Visual, x, y)
	}
}

// integrateEnemyLasers moves enemy lasers down and drops those that reach
// the exit margin above the field bottom.
func (s *Session) integrateEnemyLasers() {
	limit := s.cfg.Field.Height - s.cfg.Lasers.EnemyExitMargin
	for _, l := range s.store.EnemyLasers() {
		l.Y += s.cfg.Lasers.EnemySpeed
		if l.Y > limit {
			s.store.RemoveProjectile(l.ID)
			continue
		}
		s.presenter.PositionVisual(l.Visual, l.X, l.Y)
	}
}
