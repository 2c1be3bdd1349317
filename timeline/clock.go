package timeline

import "time"

// Clock is the wall-clock source the scheduler reads once per frame.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. Useful for replaying a timeline
// frame by frame.
type ManualClock struct {
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (m *ManualClock) Now() time.Time { return m.now }

func (m *ManualClock) Set(t time.Time) { m.now = t }

func (m *ManualClock) Advance(d time.Duration) { m.now = m.now.Add(d) }
