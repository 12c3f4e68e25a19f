package invaders

import "time"

// PausableTimer measures play time. Time spent paused is excluded: pausing
// banks what has accumulated and resuming takes a fresh reference. Freeze
// stops it for good.
type PausableTimer struct {
	banked  time.Duration
	started time.Time
	running bool
	frozen  bool
}

// Start resets the timer and begins measuring from now.
func (t *PausableTimer) Start(now time.Time) {
	*t = PausableTimer{started: now, running: true}
}

// Pause banks the time accumulated since the last start or resume.
func (t *PausableTimer) Pause(now time.Time) {
	if !t.running || t.frozen {
		return
	}
	t.banked += since(t.started, now)
	t.running = false
}

// Resume continues measuring from now.
func (t *PausableTimer) Resume(now time.Time) {
	if t.running || t.frozen {
		return
	}
	t.started = now
	t.running = true
}

// Freeze stops the timer permanently.
func (t *PausableTimer) Freeze(now time.Time) {
	if t.frozen {
		return
	}
	t.Pause(now)
	t.frozen = true
}

// Reset clears the timer to zero, stopped.
func (t *PausableTimer) Reset() {
	*t = PausableTimer{}
}

// Running reports whether time is accumulating.
func (t *PausableTimer) Running() bool { return t.running }

// Elapsed returns the accumulated play time as of now.
func (t *PausableTimer) Elapsed(now time.Time) time.Duration {
	if !t.running {
		return t.banked
	}
	return t.banked + since(t.started, now)
}

// ElapsedMS returns Elapsed in whole milliseconds.
func (t *PausableTimer) ElapsedMS(now time.Time) int64 {
	return t.Elapsed(now).Milliseconds()
}

// since never goes negative, so a clock stepping backwards cannot make
// elapsed time shrink.
func since(from, now time.Time) time.Duration {
	if d := now.Sub(from); d > 0 {
		return d
	}
	return 0
}
