package invaders

import "slices"

// Store owns the live projectiles and enemies of a session. Iteration
// follows insertion order so scans are reproducible for a fixed seed.
// Every spawn requests a visual; every removal releases it at once.
type Store struct {
	presenter    Presenter
	nextID       uint64
	playerLasers []*Projectile
	enemyLasers  []*Projectile
	enemies      []*Enemy
}

// NewStore creates an empty store that draws through presenter.
func NewStore(presenter Presenter) *Store {
	return &Store{presenter: presenter}
}

func (s *Store) id() uint64 {
	s.nextID++
	return s.nextID
}

// SpawnProjectile adds a laser with its top-left corner at (x, y).
func (s *Store) SpawnProjectile(owner Owner, x, y float64) *Projectile {
	kind := VisualPlayerLaser
	if owner == OwnerEnemy {
		kind = VisualEnemyLaser
	}
	p := &Projectile{
		ID:     ProjectileID(s.id()),
		Owner:  owner,
		X:      x,
		Y:      y,
		Visual: s.presenter.CreateVisual(kind, x, y),
	}
	if owner == OwnerEnemy {
		s.enemyLasers = append(s.enemyLasers, p)
	} else {
		s.playerLasers = append(s.playerLasers, p)
	}
	return p
}

// RemoveProjectile removes a laser of either owner and destroys its visual.
// Unknown ids are ignored.
func (s *Store) RemoveProjectile(id ProjectileID) bool {
	match := func(p *Projectile) bool { return p.ID == id }
	if i := slices.IndexFunc(s.playerLasers, match); i >= 0 {
		s.presenter.DestroyVisual(s.playerLasers[i].Visual)
		s.playerLasers = slices.Delete(s.playerLasers, i, i+1)
		return true
	}
	if i := slices.IndexFunc(s.enemyLasers, match); i >= 0 {
		s.presenter.DestroyVisual(s.enemyLasers[i].Visual)
		s.enemyLasers = slices.Delete(s.enemyLasers, i, i+1)
		return true
	}
	return false
}

// SpawnEnemy adds an enemy with base position (x, y).
func (s *Store) SpawnEnemy(x, y float64, cooldown int) *Enemy {
	e := &Enemy{
		ID:       EnemyID(s.id()),
		BaseX:    x,
		BaseY:    y,
		Cooldown: cooldown,
		Visual:   s.presenter.CreateVisual(VisualEnemy, x, y),
	}
	s.enemies = append(s.enemies, e)
	return e
}

// RemoveEnemy removes an enemy and destroys its visual. Unknown ids are ignored.
func (s *Store) RemoveEnemy(id EnemyID) bool {
	i := slices.IndexFunc(s.enemies, func(e *Enemy) bool { return e.ID == id })
	if i < 0 {
		return false
	}
	s.presenter.DestroyVisual(s.enemies[i].Visual)
	s.enemies = slices.Delete(s.enemies, i, i+1)
	return true
}

// PlayerLasers returns the live player lasers. The slice is a copy, so
// removing while ranging over it is safe.
func (s *Store) PlayerLasers() []*Projectile { return slices.Clone(s.playerLasers) }

// EnemyLasers returns the live enemy lasers as a copy.
func (s *Store) EnemyLasers() []*Projectile { return slices.Clone(s.enemyLasers) }

// Enemies returns the live enemies as a copy.
func (s *Store) Enemies() []*Enemy { return slices.Clone(s.enemies) }

// EnemyCount returns the number of live enemies.
func (s *Store) EnemyCount() int { return len(s.enemies) }

// Clear removes everything and destroys every visual.
func (s *Store) Clear() {
	for _, p := range s.playerLasers {
		s.presenter.DestroyVisual(p.Visual)
	}
	for _, p := range s.enemyLasers {
		s.presenter.DestroyVisual(p.Visual)
	}
	for _, e := range s.enemies {
		s.presenter.DestroyVisual(e.Visual)
	}
	s.playerLasers = nil
	s.enemyLasers = nil
	s.enemies = nil
}
