package tui

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/schedule"
)

// KeyState turns key presses into per-tick intents. Terminals report
// presses and auto-repeats but never releases, so a held action stays
// active for a short window after its last press.
type KeyState struct {
	clock   schedule.Clock
	hold    time.Duration
	pressed map[core.Action]time.Time
	pause   bool
}

// NewKeyState creates an input source with the given hold window.
func NewKeyState(clock schedule.Clock, hold time.Duration) *KeyState {
	return &KeyState{
		clock:   clock,
		hold:    hold,
		pressed: make(map[core.Action]time.Time),
	}
}

// Press records a key press. Held actions refresh their window; Pause is
// latched until the next Intent call.
func (k *KeyState) Press(a core.Action) {
	switch {
	case a.Held():
		k.pressed[a] = k.clock.Now()
	case a == core.ActionPause:
		k.pause = true
	}
}

// Reset forgets every press.
func (k *KeyState) Reset() {
	clear(k.pressed)
	k.pause = false
}

// Frame samples the actions active right now. A pause request is
// reported once.
func (k *KeyState) Frame() core.InputFrame {
	now := k.clock.Now()
	f := core.NewInputFrame()
	for a, at := range k.pressed {
		if now.Sub(at) <= k.hold {
			f.Set(a)
		}
	}
	if k.pause {
		f.Set(core.ActionPause)
		k.pause = false
	}
	return f
}

// Intent implements invaders.InputSource.
func (k *KeyState) Intent() invaders.Intent {
	f := k.Frame()
	return invaders.Intent{
		MoveLeft:       f.Has(core.ActionLeft),
		MoveRight:      f.Has(core.ActionRight),
		Fire:           f.Has(core.ActionFire),
		PauseRequested: f.Has(core.ActionPause),
	}
}
