package core

import "time"

// MaxFrameDelta caps a single step so a long stall (tab refocus, suspended
// terminal) does not teleport entities.
const MaxFrameDelta = 50 * time.Millisecond

// FrameClock turns frame timestamps into clamped deltas.
type FrameClock struct {
	last    time.Time
	started bool
	limit   time.Duration
}

// NewFrameClock creates a clock clamped to MaxFrameDelta.
func NewFrameClock() *FrameClock {
	return &FrameClock{limit: MaxFrameDelta}
}

// Tick records now and returns the elapsed time since the previous tick.
// The first tick returns zero; backwards jumps return zero.
func (c *FrameClock) Tick(now time.Time) time.Duration {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	return min(dt, c.limit)
}

// Reset forgets the previous timestamp, e.g. after a pause of the host loop.
func (c *FrameClock) Reset() {
	c.started = false
}

