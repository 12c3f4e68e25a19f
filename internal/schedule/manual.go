package schedule

import (
	"sort"
	"time"
)

type manualTask struct {
	handle   Handle
	fn       func()
	interval time.Duration // Zero for frame callbacks
	due      time.Time
}

// Manual is a virtual scheduler and clock. Time moves only when Step or
// Advance is called. It is not safe for concurrent use.
type Manual struct {
	now      time.Time
	frame    time.Duration
	next     Handle
	tasks    map[Handle]*manualTask
	frames   []Handle
	stepping bool
}

// NewManual creates a virtual scheduler whose frames are frame apart.
func NewManual(start time.Time, frame time.Duration) *Manual {
	if frame <= 0 {
		frame = time.Second / 60
	}
	return &Manual{
		now:   start,
		frame: frame,
		tasks: make(map[Handle]*manualTask),
	}
}

// Now returns the virtual time.
func (m *Manual) Now() time.Time { return m.now }

// FrameInterval returns the virtual duration of one frame.
func (m *Manual) FrameInterval() time.Duration { return m.frame }

// AfterFrame queues fn for the next Step.
func (m *Manual) AfterFrame(fn func()) Handle {
	m.next++
	h := m.next
	m.tasks[h] = &manualTask{handle: h, fn: fn}
	m.frames = append(m.frames, h)
	return h
}

// Every queues fn to run each time the virtual clock crosses a multiple
// of interval from now.
func (m *Manual) Every(interval time.Duration, fn func()) Handle {
	m.next++
	h := m.next
	m.tasks[h] = &manualTask{handle: h, fn: fn, interval: interval, due: m.now.Add(interval)}
	return h
}

// Cancel removes a pending callback.
func (m *Manual) Cancel(h Handle) {
	delete(m.tasks, h)
}

// Pending returns the number of live callbacks.
func (m *Manual) Pending() int { return len(m.tasks) }

// PendingFrames returns the number of live frame callbacks.
func (m *Manual) PendingFrames() int {
	n := 0
	for _, h := range m.frames {
		if _, ok := m.tasks[h]; ok {
			n++
		}
	}
	return n
}

// Step advances the clock by one frame, fires the intervals that came due,
// then runs the frame callbacks queued before the step. Callbacks queued
// while stepping wait for the next Step. It returns the number of frame
// callbacks that ran.
func (m *Manual) Step() int {
	if m.stepping {
		return 0
	}
	m.stepping = true
	defer func() { m.stepping = false }()

	m.advance(m.frame)

	queued := m.frames
	m.frames = nil
	ran := 0
	for _, h := range queued {
		t, ok := m.tasks[h]
		if !ok {
			continue
		}
		delete(m.tasks, h)
		t.fn()
		ran++
	}
	return ran
}

// Run steps until no frame callback is pending or max frames have been
// stepped, and returns the number of frames stepped.
func (m *Manual) Run(max int) int {
	n := 0
	for n < max && m.PendingFrames() > 0 {
		m.Step()
		n++
	}
	return n
}

// Advance moves the clock forward by d without running frame callbacks.
func (m *Manual) Advance(d time.Duration) {
	m.advance(d)
}

func (m *Manual) advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		due := m.dueIntervals(target)
		if len(due) == 0 {
			break
		}
		t := due[0]
		m.now = t.due
		t.due = t.due.Add(t.interval)
		t.fn()
	}
	m.now = target
}

// dueIntervals returns the repeating tasks due at or before target,
// earliest first, ties broken by handle.
func (m *Manual) dueIntervals(target time.Time) []*manualTask {
	var due []*manualTask
	for _, t := range m.tasks {
		if t.interval > 0 && !t.due.After(target) {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].handle < due[j].handle
		}
		return due[i].due.Before(due[j].due)
	})
	return due
}
