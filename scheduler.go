package main

import "time"

// yieldInterval is how long the loop sleeps between checks.
const yieldInterval = 4 * time.Millisecond

// Clock reports monotonic time since some fixed start.
type Clock interface {
	Now() time.Duration
}

// monotonicClock measures from its creation using the runtime's
// monotonic reading.
type monotonicClock struct {
	start time.Time
}

func newMonotonicClock() *monotonicClock {
	return &monotonicClock{start: time.Now()}
}

func (c *monotonicClock) Now() time.Duration {
	return time.Since(c.start)
}

// Scheduler caps rendering at a target frame rate. It never reports a
// frame early; late frames are simply taken at the next check.
type Scheduler struct {
	interval  time.Duration
	lastFrame time.Duration
	primed    bool
}

// NewScheduler creates a scheduler for fps frames per second.
func NewScheduler(fps int) *Scheduler {
	return &Scheduler{interval: time.Second / time.Duration(fps)}
}

// Interval returns the minimum time between frames.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Due reports whether a frame should be rendered at now and, if so,
// records now as the last frame time. The first call is always due.
func (s *Scheduler) Due(now time.Duration) bool {
	if s.primed && now-s.lastFrame < s.interval {
		return false
	}
	s.lastFrame = now
	s.primed = true
	return true
}
