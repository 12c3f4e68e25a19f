// Package headless drives invaders sessions without a terminal: a
// bookkeeping presenter, a scripted autopilot and a virtual-clock runner.
package headless

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// Presenter keeps the latest HUD values and the set of live visuals.
type Presenter struct {
	logger *log.Logger

	next    invaders.VisualHandle
	live    map[invaders.VisualHandle]invaders.VisualKind
	created int
	stale   int // Destroy calls for handles that were not live

	score   int
	lives   int
	elapsed time.Duration
	outcome *invaders.Outcome
}

// NewPresenter creates a presenter that logs outcomes to logger.
func NewPresenter(logger *log.Logger) *Presenter {
	return &Presenter{
		logger: logger,
		live:   make(map[invaders.VisualHandle]invaders.VisualKind),
	}
}

// CreateVisual records a new live visual.
func (p *Presenter) CreateVisual(kind invaders.VisualKind, x, y float64) invaders.VisualHandle {
	p.next++
	p.live[p.next] = kind
	p.created++
	return p.next
}

// PositionVisual does nothing; positions are read from the game.
func (p *Presenter) PositionVisual(invaders.VisualHandle, float64, float64) {}

// DestroyVisual releases a visual and counts releases of unknown handles.
func (p *Presenter) DestroyVisual(h invaders.VisualHandle) {
	if _, ok := p.live[h]; !ok {
		p.stale++
		return
	}
	delete(p.live, h)
}

// HUD values are kept for the run summary.

func (p *Presenter) ReportScore(score int) { p.score = score }
func (p *Presenter) ReportLives(lives int) { p.lives = lives }
func (p *Presenter) ReportElapsed(elapsed time.Duration) { p.elapsed = elapsed }

// ReportOutcome records and logs how the session ended.
func (p *Presenter) ReportOutcome(outcome invaders.Outcome) {
	p.outcome = &outcome
	p.logger.Info("outcome", "result", outcome, "score", p.score, "lives", p.lives)
}

// Live returns the number of visuals currently alive.
func (p *Presenter) Live() int { return len(p.live) }

// LiveOf returns the number of live visuals of one kind.
func (p *Presenter) LiveOf(kind invaders.VisualKind) int {
	n := 0
	for _, k := range p.live {
		if k == kind {
			n++
		}
	}
	return n
}

// Created returns how many visuals were ever created.
func (p *Presenter) Created() int { return p.created }

// Stale returns how many destroy calls named an unknown handle.
func (p *Presenter) Stale() int { return p.stale }

// Score returns the last reported score.
func (p *Presenter) Score() int { return p.score }

// Lives returns the last reported lives.
func (p *Presenter) Lives() int { return p.lives }

// Elapsed returns the last reported play time.
func (p *Presenter) Elapsed() time.Duration { return p.elapsed }

// Outcome returns the reported outcome, if any.
func (p *Presenter) Outcome() (invaders.Outcome, bool) {
	if p.outcome == nil {
		return 0, false
	}
	return *p.outcome, true
}
