// Package schedule abstracts the host's frame callbacks and repeating
// timers so the game loop can be driven by a terminal program, a headless
// runner, or a test with a virtual clock.
package schedule

import "time"

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// Scheduler runs callbacks on the caller's goroutine at a later point.
// Implementations never run a callback after it was cancelled.
type Scheduler interface {
	// AfterFrame runs fn once, at the next display frame.
	AfterFrame(fn func()) Handle
	// Every runs fn repeatedly, once per interval, until cancelled.
	Every(interval time.Duration, fn func()) Handle
	// Cancel stops a pending callback. Unknown or spent handles are ignored.
	Cancel(h Handle)
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }
