package invaders

// Intent is the continuous input state sampled once per tick.
type Intent struct {
	MoveLeft       bool
	MoveRight      bool
	Fire           bool
	PauseRequested bool
}

// InputSource supplies the intent for the next tick.
type InputSource interface {
	Intent() Intent
}

// Resetter is implemented by input sources that carry presses across
// ticks. The loop resets them when the ship respawns after a hit, so a
// key held before the hit does not act on the new ship.
type Resetter interface {
	Reset()
}

// StaticInput always returns the same intent.
type StaticInput Intent

// Intent returns the fixed intent.
func (s StaticInput) Intent() Intent { return Intent(s) }

// InputFunc adapts a function to InputSource.
type InputFunc func() Intent

// Intent calls f.
func (f InputFunc) Intent() Intent { return f() }
