package invaders

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/schedule"
)

// Phase is the session state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseLost
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseLost:
		return "lost"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the round.
func (p Phase) Terminal() bool {
	return p == PhaseLost || p == PhaseWon
}

// Options configures a session's collaborators.
type Options struct {
	Presenter Presenter      // Defaults to a NopPresenter
	Clock     schedule.Clock // Defaults to the system clock
	Seed      int64          // Seeds enemy cooldowns
	Logger    *log.Logger    // Defaults to a discarding logger
}

// Session owns one round of play: the player, the entity store, the
// score and the play timer, plus the phase machine over them.
type Session struct {
	cfg       config.InvadersConfig
	presenter Presenter
	clock     schedule.Clock
	rng       *rand.Rand
	logger    *log.Logger

	phase  Phase
	score  int
	player *Player // nil until Start
	store  *Store
	timer  PausableTimer
	runID  string

	epoch        time.Time // Origin of the formation sway
	swayX, swayY float64   // Sway offset for the current tick

	reported  bool
	lastScore int
	lastLives int
}

// NewSession creates a session in the Menu phase.
func NewSession(cfg config.InvadersConfig, opts Options) *Session {
	if opts.Presenter == nil {
		opts.Presenter = &NopPresenter{}
	}
	if opts.Clock == nil {
		opts.Clock = schedule.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	s := &Session{
		cfg:       cfg,
		presenter: opts.Presenter,
		clock:     opts.Clock,
		rng:       rand.New(rand.NewSource(opts.Seed)), //#nosec G404 -- gameplay randomness
		logger:    opts.Logger,
		store:     NewStore(opts.Presenter),
		epoch:     opts.Clock.Now(),
	}
	s.swayX, s.swayY = s.swayAt(s.epoch)
	return s
}

// Config returns the session's configuration.
func (s *Session) Config() config.InvadersConfig { return s.cfg }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the points earned this round.
func (s *Session) Score() int { return s.score }

// Lives returns the player's remaining lives, or the starting count before Start.
func (s *Session) Lives() int {
	if s.player == nil {
		return s.cfg.Player.Lives
	}
	return s.player.Lives
}

// Player returns the ship, or nil before Start.
func (s *Session) Player() *Player { return s.player }

// Store returns the live entities.
func (s *Session) Store() *Store { return s.store }

// RunID identifies the current round. It changes on every Start.
func (s *Session) RunID() string { return s.runID }

// Elapsed returns play time, excluding pauses.
func (s *Session) Elapsed() time.Duration { return s.timer.Elapsed(s.clock.Now()) }

// Start moves Menu to Playing: it spawns the player and the formation and
// starts the timer. It reports false in any other phase.
func (s *Session) Start() bool {
	if s.phase != PhaseMenu {
		return false
	}
	s.runID = uuid.NewString()
	s.score = 0

	x, y := s.spawnPoint()
	s.player = &Player{
		X:      x,
		Y:      y,
		Lives:  s.cfg.Player.Lives,
		Alive:  true,
		Visual: s.presenter.CreateVisual(VisualPlayer, x, y),
	}
	s.spawnFormation()

	s.phase = PhasePlaying
	s.timer.Start(s.clock.Now())
	s.reported = false
	s.publish()

	s.logger.Info("session started", "run", s.runID, "enemies", s.store.EnemyCount(), "lives", s.player.Lives)
	return true
}

// Pause moves Playing to Paused and banks the timer. It is a no-op in any
// other phase.
func (s *Session) Pause() bool {
	if s.phase != PhasePlaying {
		return false
	}
	now := s.clock.Now()
	s.timer.Pause(now)
	s.phase = PhasePaused
	s.logger.Debug("session paused", "run", s.runID, "elapsed", s.timer.Elapsed(now))
	return true
}

// Resume moves Paused back to Playing.
func (s *Session) Resume() bool {
	if s.phase != PhasePaused {
		return false
	}
	s.timer.Resume(s.clock.Now())
	s.phase = PhasePlaying
	s.logger.Debug("session resumed", "run", s.runID)
	return true
}

// LoseLife takes one life from the player. At zero the round is lost;
// otherwise the ship returns to the spawn point with its intents cleared.
// Outside Playing it does nothing, so a second hit in the tick that ended
// the round is ignored.
func (s *Session) LoseLife() {
	if s.phase != PhasePlaying || s.player == nil {
		return
	}
	p := s.player
	if p.Lives > 0 {
		p.Lives--
	}
	s.logger.Info("life lost", "run", s.runID, "lives", p.Lives)

	if p.Lives == 0 {
		p.Alive = false
		s.finish(PhaseLost)
		return
	}

	p.X, p.Y = s.spawnPoint()
	p.clearIntents()
	s.presenter.PositionVisual(p.Visual, p.X, p.Y)
	s.publish()
}

// Restart tears the round down from any phase and returns to a fresh Menu.
func (s *Session) Restart() {
	prev := s.phase
	s.store.Clear()
	if s.player != nil {
		s.presenter.DestroyVisual(s.player.Visual)
		s.player = nil
	}
	s.phase = PhaseMenu
	s.score = 0
	s.timer.Reset()
	s.reported = false
	s.publish()
	s.logger.Info("session restarted", "run", s.runID, "from", prev)
}

// checkTerminal ends the round as Won once the formation is gone.
func (s *Session) checkTerminal() {
	if s.phase == PhasePlaying && s.store.EnemyCount() == 0 {
		s.finish(PhaseWon)
	}
}

func (s *Session) finish(phase Phase) {
	now := s.clock.Now()
	s.phase = phase
	s.timer.Freeze(now)
	s.publish()

	outcome := OutcomeLost
	if phase == PhaseWon {
		outcome = OutcomeWon
	}
	s.presenter.ReportOutcome(outcome)
	s.logger.Info("session over", "run", s.runID, "outcome", outcome, "score", s.score, "elapsed", s.timer.Elapsed(now))
}

// publish reports score and lives when they differ from what was last reported.
func (s *Session) publish() {
	score, lives := s.score, s.Lives()
	if s.reported && score == s.lastScore && lives == s.lastLives {
		return
	}
	if !s.reported || score != s.lastScore {
		s.presenter.ReportScore(score)
	}
	if !s.reported || lives != s.lastLives {
		s.presenter.ReportLives(lives)
	}
	s.reported = true
	s.lastScore, s.lastLives = score, lives
}

func (s *Session) spawnPoint() (x, y float64) {
	return s.cfg.Field.Width / 2, s.cfg.Field.Height - s.cfg.Player.SpawnOffset
}

func (s *Session) spawnFormation() {
	e := s.cfg.Enemies
	cols := config.Columns(s.cfg)
	for row := range e.Rows {
		for col := range cols {
			x := e.MarginX + float64(col)*e.SpacingX
			y := e.Top + float64(row)*e.SpacingY
			s.store.SpawnEnemy(x, y, s.drawCooldown())
		}
	}
}

// drawCooldown picks an enemy firing delay uniformly from the configured range.
func (s *Session) drawCooldown() int {
	e := s.cfg.Enemies
	if e.CooldownMax <= e.CooldownMin {
		return e.CooldownMin
	}
	return e.CooldownMin + s.rng.Intn(e.CooldownMax-e.CooldownMin+1)
}
