package core

import "time"

// DefaultTickInterval is used when a clock is built with a non-positive interval.
const DefaultTickInterval = 100 * time.Millisecond

// Clock is a repeating timer driven by externally supplied frame deltas.
// The zero value is not usable; construct with NewClock.
type Clock struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewClock constructs a Clock that fires every interval.
func NewClock(interval time.Duration) Clock {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return Clock{interval: interval}
}

// Interval returns the tick period.
func (c Clock) Interval() time.Duration { return c.interval }

// Elapsed returns the time accumulated towards the next tick.
func (c Clock) Elapsed() time.Duration { return c.elapsed }

// Advance adds dt to the accumulator and reports whether a tick fired. At most
// one tick fires per call; the interval is subtracted so the remainder carries
// into the next frame.
func (c *Clock) Advance(dt time.Duration) bool {
	if dt > 0 {
		c.elapsed += dt
	}
	if c.elapsed >= c.interval {
		c.elapsed -= c.interval
		return true
	}
	return false
}

// Reset drops any accumulated time.
func (c *Clock) Reset() { c.elapsed = 0 }

// FrameTimer measures wall-clock deltas between successive frames.
type FrameTimer struct {
	last time.Time
	now  func() time.Time
}

// NewFrameTimer returns a FrameTimer reading time.Now.
func NewFrameTimer() *FrameTimer {
	return &FrameTimer{now: time.Now}
}

// Delta returns the time since the previous call. The first call returns zero.
func (f *FrameTimer) Delta() time.Duration {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	return delta
}
