package headless

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/logging"
	"github.com/vovakirdan/tui-invaders/internal/schedule"
)

// OutcomeUnfinished marks a run that hit the frame limit.
const OutcomeUnfinished = "unfinished"

// simEpoch anchors the virtual clock so runs are reproducible.
var simEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// RunConfig describes one autopilot session.
type RunConfig struct {
	Config    config.InvadersConfig
	Seed      int64
	MaxFrames int
	Logger    *log.Logger
}

// Result summarises a finished session.
type Result struct {
	RunID   string
	Outcome string // "won", "lost" or OutcomeUnfinished
	Score   int
	Lives   int
	Kills   int
	Hits    int
	Ticks   uint64
	Elapsed time.Duration
	Hash    uint64
}

// Run plays one session with the autopilot on a virtual clock until it
// ends, MaxFrames frames pass, or ctx is cancelled.
func Run(ctx context.Context, rc RunConfig) (Result, error) {
	logger := rc.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	if rc.MaxFrames <= 0 {
		return Result{}, fmt.Errorf("headless: max frames must be positive, got %d", rc.MaxFrames)
	}

	clock := schedule.NewManual(simEpoch, rc.Config.Timing.FrameInterval())
	presenter := NewPresenter(logger)
	game := invaders.New(rc.Config, invaders.Options{
		Presenter: presenter,
		Clock:     clock,
		Seed:      rc.Seed,
		Logger:    logger,
	})
	pilot := NewAutopilot(game, rc.Seed)
	loop := invaders.NewLoop(game, clock, pilot, presenter, rc.Config.Timing.ClockInterval())

	if !loop.Start() {
		return Result{}, fmt.Errorf("headless: session refused to start from %s", game.Phase())
	}

	for frames := 0; frames < rc.MaxFrames && loop.Running(); frames++ {
		if err := ctx.Err(); err != nil {
			loop.Pause()
			return summarize(game, presenter), fmt.Errorf("headless: run %s interrupted: %w", game.RunID(), err)
		}
		clock.Step()
	}
	if loop.Running() {
		loop.Pause()
		logger.Warn("frame limit reached", "run", game.RunID(), "frames", rc.MaxFrames)
	}

	res := summarize(game, presenter)
	if presenter.Stale() > 0 {
		return res, fmt.Errorf("headless: run %s released %d visuals twice", res.RunID, presenter.Stale())
	}
	return res, nil
}

func summarize(g *invaders.Game, p *Presenter) Result {
	snap := g.Snapshot()
	outcome := OutcomeUnfinished
	if o, ok := p.Outcome(); ok {
		outcome = o.String()
	}
	return Result{
		RunID:   g.RunID(),
		Outcome: outcome,
		Score:   g.Score(),
		Lives:   g.Lives(),
		Kills:   g.Kills(),
		Hits:    g.Hits(),
		Ticks:   g.TickCount(),
		Elapsed: g.Elapsed(),
		Hash:    snap.Hash(),
	}
}
