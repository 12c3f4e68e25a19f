package schedule

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManualAfterFrameRunsOnce(t *testing.T) {
	m := NewManual(epoch, 10*time.Millisecond)
	calls := 0
	m.AfterFrame(func() { calls++ })

	if ran := m.Step(); ran != 1 {
		t.Fatalf("Step() ran %d callbacks, expected 1", ran)
	}
	m.Step()
	if calls != 1 {
		t.Errorf("callback ran %d times, expected 1", calls)
	}
	if got := m.Now().Sub(epoch); got != 20*time.Millisecond {
		t.Errorf("clock advanced %v, expected 20ms", got)
	}
}

func TestManualCancelledFrameNeverRuns(t *testing.T) {
	m := NewManual(epoch, time.Millisecond)
	ran := false
	h := m.AfterFrame(func() { ran = true })
	m.Cancel(h)
	m.Cancel(h)
	m.Cancel(Handle(999))

	m.Step()
	if ran {
		t.Error("cancelled callback ran")
	}
	if m.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", m.Pending())
	}
}

func TestManualRescheduleWaitsForNextStep(t *testing.T) {
	m := NewManual(epoch, time.Millisecond)
	calls := 0
	var frame func()
	frame = func() {
		calls++
		if calls < 5 {
			m.AfterFrame(frame)
		}
	}
	m.AfterFrame(frame)

	m.Step()
	if calls != 1 {
		t.Fatalf("after one step calls = %d, expected 1", calls)
	}
	if n := m.Run(100); n != 4 {
		t.Errorf("Run() stepped %d frames, expected 4", n)
	}
	if calls != 5 {
		t.Errorf("calls = %d, expected 5", calls)
	}
}

func TestManualEvery(t *testing.T) {
	m := NewManual(epoch, 100*time.Millisecond)
	var fired []time.Duration
	h := m.Every(time.Second, func() { fired = append(fired, m.Now().Sub(epoch)) })

	m.Advance(2500 * time.Millisecond)
	if len(fired) != 2 {
		t.Fatalf("fired %d times, expected 2", len(fired))
	}
	if fired[0] != time.Second || fired[1] != 2*time.Second {
		t.Errorf("fired at %v, expected [1s 2s]", fired)
	}

	m.Cancel(h)
	m.Advance(5 * time.Second)
	if len(fired) != 2 {
		t.Errorf("fired after cancel: %v", fired)
	}
}

func TestManualEveryDuringSteps(t *testing.T) {
	m := NewManual(epoch, 250*time.Millisecond)
	count := 0
	m.Every(time.Second, func() { count++ })

	for i := 0; i < 8; i++ {
		m.Step()
	}
	if count != 2 {
		t.Errorf("interval fired %d times over 2s of frames, expected 2", count)
	}
}

func TestManualRunStopsAtMax(t *testing.T) {
	m := NewManual(epoch, time.Millisecond)
	var frame func()
	frame = func() { m.AfterFrame(frame) }
	m.AfterFrame(frame)

	if n := m.Run(10); n != 10 {
		t.Errorf("Run(10) = %d, expected 10", n)
	}
	if m.PendingFrames() != 1 {
		t.Errorf("PendingFrames() = %d, expected 1", m.PendingFrames())
	}
}

func TestSystemClock(t *testing.T) {
	before := time.Now()
	got := SystemClock{}.Now()
	if got.Before(before) {
		t.Errorf("SystemClock.Now() = %v, before %v", got, before)
	}
}
