package invaders

import "math"

// Snapshot is a flat copy of the simulation state for determinism checks
// and headless reporting. Entity data is flattened in store order.
type Snapshot struct {
	Tick           uint64
	Phase          string
	Score          int
	Lives          int
	Kills          int
	Hits           int
	Alive          bool
	PlayerX        float64
	PlayerY        float64
	PlayerCooldown int
	EnemyCount     int

	// Enemies are 4 values each: ID, BaseX, BaseY, Cooldown.
	// Lasers are 3 values each: ID, X, Y.
	EnemyData       []float64
	PlayerLaserData []float64
	EnemyLaserData  []float64
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  g.tick,
		Phase: g.phase.String(),
		Score: g.score,
		Lives: g.Lives(),
		Kills: g.kills,
		Hits:  g.hits,
	}
	if p := g.player; p != nil {
		snap.Alive = p.Alive
		snap.PlayerX = p.X
		snap.PlayerY = p.Y
		snap.PlayerCooldown = p.Cooldown
	}

	enemies := g.store.Enemies()
	snap.EnemyCount = len(enemies)
	snap.EnemyData = make([]float64, 0, len(enemies)*4)
	for _, e := range enemies {
		snap.EnemyData = append(snap.EnemyData, float64(e.ID), e.BaseX, e.BaseY, float64(e.Cooldown))
	}
	snap.PlayerLaserData = flattenLasers(g.store.PlayerLasers())
	snap.EnemyLaserData = flattenLasers(g.store.EnemyLasers())
	return snap
}

func flattenLasers(lasers []*Projectile) []float64 {
	data := make([]float64, 0, len(lasers)*3)
	for _, l := range lasers {
		data = append(data, float64(l.ID), l.X, l.Y)
	}
	return data
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.Phase {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Hits)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerCooldown) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)     //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	if snap.Alive {
		h = h*31 + 1
	}

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.PlayerLaserData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.EnemyLaserData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
