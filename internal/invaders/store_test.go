package invaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSpawnAndRemoveProjectile(t *testing.T) {
	rec := newRecorder()
	s := NewStore(rec)

	up := s.SpawnProjectile(OwnerPlayer, 10, 20)
	down := s.SpawnProjectile(OwnerEnemy, 30, 40)

	require.Len(t, s.PlayerLasers(), 1)
	require.Len(t, s.EnemyLasers(), 1)
	assert.NotEqual(t, up.ID, down.ID)
	assert.Equal(t, 1, rec.liveOf(VisualPlayerLaser))
	assert.Equal(t, 1, rec.liveOf(VisualEnemyLaser))

	assert.True(t, s.RemoveProjectile(up.ID))
	assert.False(t, hasProjectile(s, up.ID))
	assert.Empty(t, s.PlayerLasers())
	assert.Equal(t, 0, rec.liveOf(VisualPlayerLaser))

	assert.True(t, s.RemoveProjectile(down.ID))
	assert.Empty(t, s.EnemyLasers())
	assert.Equal(t, 2, rec.destroyed)
}

func TestStoreRemoveAbsentIsNoop(t *testing.T) {
	rec := newRecorder()
	s := NewStore(rec)
	p := s.SpawnProjectile(OwnerPlayer, 0, 0)
	e := s.SpawnEnemy(0, 0, 10)

	require.True(t, s.RemoveProjectile(p.ID))
	require.True(t, s.RemoveEnemy(e.ID))

	assert.False(t, s.RemoveProjectile(p.ID))
	assert.False(t, s.RemoveEnemy(e.ID))
	assert.False(t, s.RemoveProjectile(ProjectileID(999)))
	assert.False(t, s.RemoveEnemy(EnemyID(999)))
	assert.Equal(t, 2, rec.destroyed)
	assert.Zero(t, rec.unknown, "a visual was destroyed twice")
}

func TestStoreIDsNeverReused(t *testing.T) {
	s := NewStore(&NopPresenter{})
	seen := make(map[uint64]bool)
	for i := range 20 {
		p := s.SpawnProjectile(OwnerPlayer, float64(i), 0)
		require.False(t, seen[uint64(p.ID)])
		seen[uint64(p.ID)] = true
		s.RemoveProjectile(p.ID)

		e := s.SpawnEnemy(float64(i), 0, 0)
		require.False(t, seen[uint64(e.ID)])
		seen[uint64(e.ID)] = true
	}
	assert.Equal(t, 20, s.EnemyCount())
}

func TestStoreInsertionOrder(t *testing.T) {
	s := NewStore(&NopPresenter{})
	a := s.SpawnEnemy(1, 0, 0)
	b := s.SpawnEnemy(2, 0, 0)
	c := s.SpawnEnemy(3, 0, 0)

	s.RemoveEnemy(b.ID)
	d := s.SpawnEnemy(4, 0, 0)

	var ids []EnemyID
	for _, e := range s.Enemies() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []EnemyID{a.ID, c.ID, d.ID}, ids)
}

func TestStoreIterationIsACopy(t *testing.T) {
	s := NewStore(&NopPresenter{})
	for i := range 5 {
		s.SpawnProjectile(OwnerPlayer, float64(i), 0)
	}

	visited := 0
	for _, p := range s.PlayerLasers() {
		s.RemoveProjectile(p.ID)
		visited++
	}
	assert.Equal(t, 5, visited)
	assert.Empty(t, s.PlayerLasers())
}

func TestStoreClearReleasesEverything(t *testing.T) {
	rec := newRecorder()
	s := NewStore(rec)
	s.SpawnProjectile(OwnerPlayer, 0, 0)
	s.SpawnProjectile(OwnerEnemy, 0, 0)
	s.SpawnEnemy(0, 0, 0)
	s.SpawnEnemy(0, 0, 0)

	s.Clear()

	assert.Empty(t, rec.live)
	assert.Equal(t, 4, rec.destroyed)
	assert.Zero(t, s.EnemyCount())
	assert.Empty(t, s.PlayerLasers())
	assert.Empty(t, s.EnemyLasers())
}
