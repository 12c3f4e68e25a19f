// Package tui runs an invaders session in the terminal with Bubble Tea.
// It adapts the simulation's scheduler, presenter and input boundaries to
// Bubble Tea messages, a cell screen and key presses.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/schedule"
)

// FrameMsg fires a frame callback registered with AfterFrame.
type FrameMsg struct{ Handle schedule.Handle }

// IntervalMsg fires a repeating callback registered with Every.
type IntervalMsg struct{ Handle schedule.Handle }

type interval struct {
	every time.Duration
	fn    func()
}

// Scheduler implements schedule.Scheduler on top of tea.Tick. Callbacks
// run inside Model.Update, on Bubble Tea's single update goroutine.
// Cancelling forgets the handle; its message is dropped when it arrives.
type Scheduler struct {
	frame     time.Duration
	next      schedule.Handle
	frames    map[schedule.Handle]func()
	intervals map[schedule.Handle]interval
	pending   []tea.Cmd
}

// NewScheduler creates a scheduler that fires frames at tickRate per second.
func NewScheduler(tickRate int) *Scheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Scheduler{
		frame:     time.Second / time.Duration(tickRate),
		frames:    make(map[schedule.Handle]func()),
		intervals: make(map[schedule.Handle]interval),
	}
}

// AfterFrame queues fn for the next frame.
func (s *Scheduler) AfterFrame(fn func()) schedule.Handle {
	s.next++
	h := s.next
	s.frames[h] = fn
	s.pending = append(s.pending, frameCmd(h, s.frame))
	return h
}

// Every runs fn once per d until cancelled.
func (s *Scheduler) Every(d time.Duration, fn func()) schedule.Handle {
	s.next++
	h := s.next
	s.intervals[h] = interval{every: d, fn: fn}
	s.pending = append(s.pending, intervalCmd(h, d))
	return h
}

// Cancel forgets a handle.
func (s *Scheduler) Cancel(h schedule.Handle) {
	delete(s.frames, h)
	delete(s.intervals, h)
}

// Handle runs the callback a message refers to, if it is still live.
// It reports whether msg was a scheduler message.
func (s *Scheduler) Handle(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case FrameMsg:
		if fn, ok := s.frames[msg.Handle]; ok {
			delete(s.frames, msg.Handle)
			fn()
		}
		return true
	case IntervalMsg:
		if iv, ok := s.intervals[msg.Handle]; ok {
			iv.fn()
			if _, still := s.intervals[msg.Handle]; still {
				s.pending = append(s.pending, intervalCmd(msg.Handle, iv.every))
			}
		}
		return true
	}
	return false
}

// Live returns the number of callbacks that have not fired or been cancelled.
func (s *Scheduler) Live() int { return len(s.frames) + len(s.intervals) }

// Flush returns the commands queued since the last flush.
func (s *Scheduler) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// frameCmd returns a Bubble Tea command that delivers a frame message after d.
func frameCmd(h schedule.Handle, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return FrameMsg{Handle: h}
	})
}

func intervalCmd(h schedule.Handle, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return IntervalMsg{Handle: h}
	})
}
