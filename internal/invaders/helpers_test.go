package invaders

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/schedule"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// recorder is a Presenter that tracks live visuals and every report.
type recorder struct {
	next      VisualHandle
	live      map[VisualHandle]VisualKind
	created   map[VisualKind]int
	destroyed int
	unknown   int // DestroyVisual calls for handles that were not live

	scores   []int
	lives    []int
	elapsed  []time.Duration
	outcomes []Outcome
}

func newRecorder() *recorder {
	return &recorder{
		live:    make(map[VisualHandle]VisualKind),
		created: make(map[VisualKind]int),
	}
}

func (r *recorder) CreateVisual(kind VisualKind, x, y float64) VisualHandle {
	r.next++
	r.live[r.next] = kind
	r.created[kind]++
	return r.next
}

func (r *recorder) PositionVisual(VisualHandle, float64, float64) {}

func (r *recorder) DestroyVisual(h VisualHandle) {
	if _, ok := r.live[h]; !ok {
		r.unknown++
		return
	}
	delete(r.live, h)
	r.destroyed++
}

func (r *recorder) ReportScore(score int) { r.scores = append(r.scores, score) }
func (r *recorder) ReportLives(lives int) { r.lives = append(r.lives, lives) }
func (r *recorder) ReportElapsed(d time.Duration) { r.elapsed = append(r.elapsed, d) }
func (r *recorder) ReportOutcome(outcome Outcome) { r.outcomes = append(r.outcomes, outcome) }

func (r *recorder) liveOf(kind VisualKind) int {
	n := 0
	for _, k := range r.live {
		if k == kind {
			n++
		}
	}
	return n
}

// hasProjectile reports whether a laser of either owner is still alive.
func hasProjectile(s *Store, id ProjectileID) bool {
	for _, p := range append(s.PlayerLasers(), s.EnemyLasers()...) {
		if p.ID == id {
			return true
		}
	}
	return false
}

type fixture struct {
	game  *Game
	rec   *recorder
	clock *schedule.Manual
}

func newFixture(t *testing.T, mutate ...func(*config.InvadersConfig)) *fixture {
	t.Helper()
	cfg := config.DefaultInvadersConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	rec := newRecorder()
	clock := schedule.NewManual(epoch, time.Second/60)
	g := New(cfg, Options{Presenter: rec, Clock: clock, Seed: 1})
	return &fixture{game: g, rec: rec, clock: clock}
}

func (f *fixture) started(t *testing.T) *fixture {
	t.Helper()
	if !f.game.Start() {
		t.Fatal("Start() refused from Menu")
	}
	return f
}

func (f *fixture) ticks(n int, in Intent) {
	for range n {
		f.game.Tick(in)
	}
}
