package invaders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

func TestPlayerMovesRight(t *testing.T) {
	f := newFixture(t).started(t)
	p := f.game.Player()
	require.Equal(t, 400.0, p.X)

	f.ticks(10, Intent{MoveRight: true})
	assert.Equal(t, 430.0, p.X)
}

func TestPlayerClampedToField(t *testing.T) {
	tests := []struct {
		name     string
		in       Intent
		expected float64
	}{
		{"right edge", Intent{MoveRight: true}, 750},
		{"left edge", Intent{MoveLeft: true}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t).started(t)
			for range 150 {
				f.game.Tick(tc.in)
				x := f.game.Player().X
				require.GreaterOrEqual(t, x, 0.0)
				require.LessOrEqual(t, x, 750.0)
			}
			assert.Equal(t, tc.expected, f.game.Player().X)
		})
	}
}

func TestPlayerOpposingIntentsCancel(t *testing.T) {
	f := newFixture(t).started(t)
	f.ticks(20, Intent{MoveLeft: true, MoveRight: true})
	assert.Equal(t, 400.0, f.game.Player().X)
}

func TestPlayerFireCooldown(t *testing.T) {
	f := newFixture(t).started(t)
	p := f.game.Player()

	f.game.Tick(Intent{Fire: true})
	require.Len(t, f.game.Store().PlayerLasers(), 1)
	require.Equal(t, 30, p.Cooldown)

	for i := 1; i < 30; i++ {
		// Reasserting fire mid-countdown does nothing.
		f.game.Tick(Intent{Fire: i == 15})
		require.Equal(t, 30-i, p.Cooldown, "tick %d", i)
		require.Len(t, f.game.Store().PlayerLasers(), 1, "tick %d", i)
	}

	f.game.Tick(Intent{})
	assert.Equal(t, 0, p.Cooldown)
	assert.Len(t, f.game.Store().PlayerLasers(), 1)

	f.game.Tick(Intent{Fire: true})
	assert.Len(t, f.game.Store().PlayerLasers(), 2)
	assert.Equal(t, 30, p.Cooldown)
}

func TestHeldFireShootsEveryCooldown(t *testing.T) {
	f := newFixture(t).started(t)
	f.ticks(91, Intent{Fire: true})
	// Shots on ticks 1, 31, 61 and 91.
	assert.Equal(t, 4, f.rec.created[VisualPlayerLaser])
}

func TestPlayerLaserSpawnsAtMuzzle(t *testing.T) {
	f := newFixture(t).started(t)
	f.game.Tick(Intent{Fire: true})

	lasers := f.game.Store().PlayerLasers()
	require.Len(t, lasers, 1)
	// Centred on the ship (400 + 25 - 3), bottom on its top edge (550 - 20),
	// then moved once.
	assert.Equal(t, 422.0, lasers[0].X)
	assert.Equal(t, 527.0, lasers[0].Y)
}

func TestPlayerLaserMovesUpAndLeavesField(t *testing.T) {
	f := newFixture(t).started(t)
	l := f.game.Store().SpawnProjectile(OwnerPlayer, 5, 7)

	prev := l.Y
	for hasProjectile(f.game.Store(), l.ID) {
		f.game.Tick(Intent{})
		if hasProjectile(f.game.Store(), l.ID) {
			require.Less(t, l.Y, prev)
			prev = l.Y
		}
	}
	assert.Equal(t, 1.0, prev)
	assert.Zero(t, f.rec.unknown)
}

func TestEnemyLaserMovesDownAndLeavesField(t *testing.T) {
	f := newFixture(t).started(t)
	// Far left of the ship so it never hits.
	l := f.game.Store().SpawnProjectile(OwnerEnemy, 0, 560)

	f.game.Tick(Intent{})
	require.True(t, hasProjectile(f.game.Store(), l.ID))
	assert.Equal(t, 562.0, l.Y)

	f.ticks(4, Intent{})
	assert.Equal(t, 570.0, l.Y)
	require.True(t, hasProjectile(f.game.Store(), l.ID), "exactly at the margin stays")

	f.game.Tick(Intent{})
	assert.False(t, hasProjectile(f.game.Store(), l.ID))
	assert.Equal(t, 3, f.game.Lives())
}

func TestEnemyFiresWhenCooldownExpires(t *testing.T) {
	f := newFixture(t).started(t)
	enemies := f.game.Store().Enemies()
	require.NotEmpty(t, enemies)
	e := enemies[0]
	e.Cooldown = 3

	f.ticks(2, Intent{})
	assert.Equal(t, 1, e.Cooldown)
	assert.Empty(t, f.game.Store().EnemyLasers())

	f.game.Tick(Intent{})
	lasers := f.game.Store().EnemyLasers()
	require.Len(t, lasers, 1)
	assert.GreaterOrEqual(t, e.Cooldown, 200)
	assert.LessOrEqual(t, e.Cooldown, 700)

	// Bottom centre of the drawn enemy, then moved once.
	x, y := f.game.EnemyPosition(e)
	assert.Equal(t, x+25-3, lasers[0].X)
	assert.Equal(t, y+40+2, lasers[0].Y)
}

func TestEnemyCooldownNeverNegative(t *testing.T) {
	f := newFixture(t).started(t)
	for range 400 {
		f.game.Tick(Intent{})
		for _, e := range f.game.Store().Enemies() {
			require.GreaterOrEqual(t, e.Cooldown, 0)
		}
	}
}

func TestFormationSwaysTogether(t *testing.T) {
	f := newFixture(t).started(t)
	enemies := f.game.Store().Enemies()
	require.Len(t, enemies, 18)

	f.game.Tick(Intent{})
	x, y := f.game.EnemyPosition(enemies[0])
	assert.InDelta(t, enemies[0].BaseX, x, 1e-9, "sin(0) is zero")
	assert.InDelta(t, enemies[0].BaseY+30, y, 1e-9, "cos(0) is one")

	f.clock.Advance(1500 * time.Millisecond)
	f.game.Tick(Intent{})
	dx0, dy0 := offset(f.game, enemies[0])
	for _, e := range enemies[1:] {
		dx, dy := offset(f.game, e)
		assert.InDelta(t, dx0, dx, 1e-9)
		assert.InDelta(t, dy0, dy, 1e-9)
	}
	assert.InDelta(t, 40*0.997494986604054, dx0, 1e-6)
}

func offset(g *Game, e *Enemy) (dx, dy float64) {
	x, y := g.EnemyPosition(e)
	return x - e.BaseX, y - e.BaseY
}

func TestFormationSize(t *testing.T) {
	tests := []struct {
		name     string
		width    float64
		expected int
	}{
		{"default field", 800, 18},
		{"narrow field", 400, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, func(c *config.InvadersConfig) { c.Field.Width = tc.width }).started(t)
			assert.Equal(t, tc.expected, f.game.Store().EnemyCount())
			assert.Equal(t, tc.expected, f.rec.liveOf(VisualEnemy))
		})
	}
}
