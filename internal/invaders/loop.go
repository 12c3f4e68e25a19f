package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/schedule"
)

// Loop drives a Game from a scheduler: one Tick per frame while Playing,
// and a slower interval that refreshes the displayed play time.
//
// At most one frame is ever pending. Every path that leaves Playing
// cancels both the frame and the interval before returning, so no
// callback can touch the game after it stopped.
type Loop struct {
	game      *Game
	sched     schedule.Scheduler
	input     InputSource
	presenter Presenter
	interval  time.Duration

	frame schedule.Handle
	clock schedule.Handle
}

// NewLoop creates a stopped loop. presenter receives the elapsed-time
// refreshes and may be nil.
func NewLoop(game *Game, sched schedule.Scheduler, input InputSource, presenter Presenter, clockInterval time.Duration) *Loop {
	if presenter == nil {
		presenter = &NopPresenter{}
	}
	if clockInterval <= 0 {
		clockInterval = time.Second
	}
	return &Loop{
		game:      game,
		sched:     sched,
		input:     input,
		presenter: presenter,
		interval:  clockInterval,
	}
}

// Game returns the driven game.
func (l *Loop) Game() *Game { return l.game }

// Running reports whether a frame is pending.
func (l *Loop) Running() bool { return l.frame != 0 }

// Start begins a round from the Menu and schedules the first frame.
func (l *Loop) Start() bool {
	if !l.game.Start() {
		return false
	}
	l.run()
	return true
}

// Pause suspends a running round.
func (l *Loop) Pause() bool {
	if !l.game.Pause() {
		return false
	}
	l.stop()
	return true
}

// Resume continues a paused round.
func (l *Loop) Resume() bool {
	if !l.game.Resume() {
		return false
	}
	l.run()
	return true
}

// Restart stops everything and returns the game to a fresh Menu.
func (l *Loop) Restart() {
	l.stop()
	l.game.Restart()
	l.reportElapsed()
}

func (l *Loop) run() {
	l.schedule()
	if l.clock == 0 {
		l.clock = l.sched.Every(l.interval, l.reportElapsed)
	}
	l.reportElapsed()
}

// stop cancels the pending frame and the clock interval and reports the
// final play time.
func (l *Loop) stop() {
	if l.frame != 0 {
		l.sched.Cancel(l.frame)
		l.frame = 0
	}
	if l.clock != 0 {
		l.sched.Cancel(l.clock)
		l.clock = 0
	}
	l.reportElapsed()
}

func (l *Loop) schedule() {
	if l.frame != 0 {
		return
	}
	l.frame = l.sched.AfterFrame(l.step)
}

// step is the frame callback. Its own handle is cleared first, so a
// reschedule below can never collide with it.
func (l *Loop) step() {
	l.frame = 0
	in := l.input.Intent()
	if in.PauseRequested {
		l.Pause()
		return
	}

	lives := l.game.Lives()
	l.game.Tick(in)
	if l.game.Phase() == PhasePlaying {
		if l.game.Lives() < lives {
			l.resetInput()
		}
		l.schedule()
		return
	}
	l.stop()
}

func (l *Loop) resetInput() {
	if r, ok := l.input.(Resetter); ok {
		r.Reset()
	}
}

func (l *Loop) reportElapsed() {
	l.presenter.ReportElapsed(l.game.Elapsed())
}
