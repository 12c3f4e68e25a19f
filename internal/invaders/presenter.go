package invaders

//go:generate go tool mockgen -destination=./mocks/presenter_mock.go -package=mocks . Presenter

import "time"

// VisualKind selects the sprite a presenter creates for an entity.
type VisualKind int

const (
	VisualPlayer VisualKind = iota
	VisualEnemy
	VisualPlayerLaser
	VisualEnemyLaser
)

func (k VisualKind) String() string {
	switch k {
	case VisualPlayer:
		return "player"
	case VisualEnemy:
		return "enemy"
	case VisualPlayerLaser:
		return "player_laser"
	case VisualEnemyLaser:
		return "enemy_laser"
	default:
		return "unknown"
	}
}

// VisualHandle is an opaque reference issued by a Presenter.
// The simulation never interprets it. Zero means "no visual".
type VisualHandle uint64

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeLost Outcome = iota
	OutcomeWon
)

func (o Outcome) String() string {
	if o == OutcomeWon {
		return "won"
	}
	return "lost"
}

// Presenter is the display side of a session. The simulation calls it to
// create, move and destroy visuals and to publish HUD values. All calls
// are fire-and-forget.
type Presenter interface {
	// CreateVisual shows a new sprite at (x, y) and returns its handle.
	CreateVisual(kind VisualKind, x, y float64) VisualHandle
	// PositionVisual moves a sprite to (x, y).
	PositionVisual(h VisualHandle, x, y float64)
	// DestroyVisual must tolerate handles it no longer knows.
	DestroyVisual(h VisualHandle)

	// HUD values. Score and lives arrive only when they change.
	ReportScore(score int)
	ReportLives(lives int)
	ReportElapsed(elapsed time.Duration)
	ReportOutcome(outcome Outcome)
}

// NopPresenter hands out sequential handles and ignores everything else.
type NopPresenter struct {
	next VisualHandle
}

// CreateVisual returns the next handle.
func (p *NopPresenter) CreateVisual(VisualKind, float64, float64) VisualHandle {
	p.next++
	return p.next
}

// The remaining methods discard their arguments.

func (p *NopPresenter) PositionVisual(VisualHandle, float64, float64) {}
func (p *NopPresenter) DestroyVisual(VisualHandle) {}
func (p *NopPresenter) ReportScore(int) {}
func (p *NopPresenter) ReportLives(int) {}
func (p *NopPresenter) ReportElapsed(time.Duration) {}
func (p *NopPresenter) ReportOutcome(Outcome) {}
