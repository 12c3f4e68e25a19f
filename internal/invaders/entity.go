// Package invaders implements the simulation of a fixed-formation arcade
// shooter: a player ship at the bottom of the field, a swaying grid of
// enemies above, and the lasers they trade. It is presentation-agnostic
// and advances only when ticked.
package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Owner tags which side fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerEnemy {
		return "enemy"
	}
	return "player"
}

// ProjectileID identifies a projectile for its whole life. IDs are never reused.
type ProjectileID uint64

// EnemyID identifies an enemy. IDs are never reused.
type EnemyID uint64

// Player is the ship. Positions are the top-left corner in field pixels.
type Player struct {
	X, Y      float64
	MoveLeft  bool
	MoveRight bool
	Fire      bool
	Cooldown  int // Ticks until the next shot is allowed
	Lives     int
	Alive     bool
	Visual    VisualHandle
}

// Box returns the player's collision box.
func (p *Player) Box(cfg config.PlayerConfig) core.Box {
	return core.BoxAt(p.X, p.Y, cfg.Width, cfg.Height)
}

// Muzzle returns where a fired laser's top-left corner starts: centred on
// the ship, with the laser's bottom on the ship's top edge.
func (p *Player) Muzzle(cfg config.InvadersConfig) (x, y float64) {
	return p.X + cfg.Player.Width/2 - cfg.Lasers.Width/2, p.Y - cfg.Lasers.Height
}

// clearIntents drops all held input.
func (p *Player) clearIntents() {
	p.MoveLeft = false
	p.MoveRight = false
	p.Fire = false
}

// Projectile is a laser in flight. Being in the store means it is alive.
type Projectile struct {
	ID     ProjectileID
	Owner  Owner
	X, Y   float64
	Visual VisualHandle
}

// Box returns the projectile's collision box.
func (p *Projectile) Box(cfg config.LaserConfig) core.Box {
	return core.BoxAt(p.X, p.Y, cfg.Width, cfg.Height)
}

// Enemy is one member of the formation. Its base position never changes;
// where it is drawn depends on the formation sway at the current time.
type Enemy struct {
	ID       EnemyID
	BaseX    float64
	BaseY    float64
	Cooldown int
	Visual   VisualHandle
}
