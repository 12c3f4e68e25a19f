package headless

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/schedule"
)

func newPilotGame(t *testing.T) *invaders.Game {
	t.Helper()
	clock := schedule.NewManual(simEpoch, time.Second/60)
	g := invaders.New(config.DefaultInvadersConfig(), invaders.Options{Clock: clock, Seed: 3})
	require.True(t, g.Start())
	return g
}

func TestPresenterTracksVisuals(t *testing.T) {
	p := NewPresenter(log.New(&bytes.Buffer{}))
	a := p.CreateVisual(invaders.VisualEnemy, 0, 0)
	b := p.CreateVisual(invaders.VisualPlayerLaser, 0, 0)

	assert.Equal(t, 2, p.Live())
	assert.Equal(t, 1, p.LiveOf(invaders.VisualEnemy))

	p.DestroyVisual(a)
	p.DestroyVisual(a)
	p.DestroyVisual(b)
	assert.Zero(t, p.Live())
	assert.Equal(t, 2, p.Created())
	assert.Equal(t, 1, p.Stale())
}

func TestPresenterLogsOutcome(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(log.New(&buf))
	p.ReportScore(700)
	p.ReportLives(0)

	_, ok := p.Outcome()
	require.False(t, ok)

	p.ReportOutcome(invaders.OutcomeLost)
	o, ok := p.Outcome()
	require.True(t, ok)
	assert.Equal(t, invaders.OutcomeLost, o)
	assert.Contains(t, buf.String(), "score=700")
}

func TestAutopilotAlwaysFires(t *testing.T) {
	g := newPilotGame(t)
	pilot := NewAutopilot(g, 1)
	for range 50 {
		in := pilot.Intent()
		assert.True(t, in.Fire)
		assert.False(t, in.PauseRequested)
		g.Tick(in)
	}
}

func TestAutopilotLinesUpUnderEnemy(t *testing.T) {
	g := newPilotGame(t)
	pilot := NewAutopilot(g, 1)
	pilot.hesitate = 0

	// Ship centre at 425 sits in the gap between columns at 385 and 465.
	in := pilot.Intent()
	assert.True(t, in.MoveLeft != in.MoveRight, "moves toward a column")
}

func TestAutopilotDodges(t *testing.T) {
	tests := []struct {
		name      string
		laserX    float64
		wantRight bool
	}{
		{"laser left of centre", 405, true},
		{"laser right of centre", 440, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newPilotGame(t)
			pilot := NewAutopilot(g, 1)
			pilot.hesitate = 0
			g.Store().SpawnProjectile(invaders.OwnerEnemy, tc.laserX, 500)

			in := pilot.Intent()
			assert.Equal(t, tc.wantRight, in.MoveRight)
			assert.Equal(t, !tc.wantRight, in.MoveLeft)
		})
	}
}

func TestAutopilotDodgesAwayFromWall(t *testing.T) {
	g := newPilotGame(t)
	pilot := NewAutopilot(g, 1)
	pilot.hesitate = 0
	g.Player().X = 0
	g.Store().SpawnProjectile(invaders.OwnerEnemy, 40, 500)

	in := pilot.Intent()
	assert.True(t, in.MoveRight)
}

func TestAutopilotIdleWithoutPlayer(t *testing.T) {
	clock := schedule.NewManual(simEpoch, time.Second/60)
	g := invaders.New(config.DefaultInvadersConfig(), invaders.Options{Clock: clock})
	assert.Equal(t, invaders.Intent{}, NewAutopilot(g, 1).Intent())
}

func TestRunFinishes(t *testing.T) {
	res, err := Run(context.Background(), RunConfig{
		Config:    config.DefaultInvadersConfig(),
		Seed:      42,
		MaxFrames: 60 * 60 * 10,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Contains(t, []string{"won", "lost", OutcomeUnfinished}, res.Outcome)
	assert.Equal(t, res.Kills*100, res.Score)
	assert.GreaterOrEqual(t, res.Lives, 0)
	assert.Positive(t, res.Ticks)
	if res.Outcome == "won" {
		assert.Equal(t, 18, res.Kills)
	}
	if res.Outcome == "lost" {
		assert.Zero(t, res.Lives)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	rc := RunConfig{Config: config.DefaultInvadersConfig(), Seed: 9, MaxFrames: 5000}
	a, err := Run(context.Background(), rc)
	require.NoError(t, err)
	b, err := Run(context.Background(), rc)
	require.NoError(t, err)

	assert.Equal(t, a.Hash, b.Hash)
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Ticks, b.Ticks)
	assert.Equal(t, a.Elapsed, b.Elapsed)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestRunFrameLimit(t *testing.T) {
	res, err := Run(context.Background(), RunConfig{Config: config.DefaultInvadersConfig(), Seed: 1, MaxFrames: 10})
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnfinished, res.Outcome)
	assert.Equal(t, uint64(10), res.Ticks)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, RunConfig{Config: config.DefaultInvadersConfig(), MaxFrames: 100})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunRejectsZeroFrames(t *testing.T) {
	_, err := Run(context.Background(), RunConfig{Config: config.DefaultInvadersConfig()})
	require.Error(t, err)
}
