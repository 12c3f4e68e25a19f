package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// KeyMap defines the key bindings for every phase.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Pause   key.Binding
	Start   key.Binding
	Options key.Binding
	Resume  key.Binding
	Back    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc", "p"),
			key.WithHelp("esc/p", "pause"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Options: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "options"),
		),
		Resume: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "resume"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "back"),
		),
		Restart: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "play again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to an action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Options):
		return core.ActionOptions
	case key.Matches(msg, k.Resume):
		return core.ActionResume
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the in-game help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the options screen.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Pause, k.Resume, k.Back},
		{k.Start, k.Options, k.Restart, k.Quit},
	}
}

// phaseHelp is a help.KeyMap limited to the keys that do something in one
// phase.
type phaseHelp struct {
	bindings []key.Binding
}

func (p phaseHelp) ShortHelp() []key.Binding { return p.bindings }
func (p phaseHelp) FullHelp() [][]key.Binding { return [][]key.Binding{p.bindings} }

// forPhase returns the bindings shown while the game is in phase.
func (k KeyMap) forPhase(phase invaders.Phase, options bool) phaseHelp {
	switch phase {
	case invaders.PhaseMenu:
		if options {
			return phaseHelp{[]key.Binding{k.Start, k.Back, k.Quit}}
		}
		return phaseHelp{[]key.Binding{k.Start, k.Options, k.Quit}}
	case invaders.PhasePaused:
		return phaseHelp{[]key.Binding{k.Resume, k.Back, k.Quit}}
	case invaders.PhaseLost, invaders.PhaseWon:
		return phaseHelp{[]key.Binding{k.Restart, k.Quit}}
	default:
		return phaseHelp{k.ShortHelp()}
	}
}
