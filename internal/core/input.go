package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move ship left (held)
	ActionRight          // Right arrow, D - move ship right (held)
	ActionFire           // Space - fire (held)
	ActionPause          // Esc, P - pause a running session
	ActionStart          // Enter - start from the menu
	ActionOptions        // O - open the options screen
	ActionResume         // R - resume a paused session
	ActionBack           // B - abandon a paused session
	ActionRestart        // C - restart after the session ended
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	case ActionOptions:
		return "Options"
	case ActionResume:
		return "Resume"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Held reports whether the action is a continuous intent (kept active while
// the key is down) rather than a one-shot command.
func (a Action) Held() bool {
	return a == ActionLeft || a == ActionRight || a == ActionFire
}

// InputFrame represents the set of actions active during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
