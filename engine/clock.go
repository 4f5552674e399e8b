package engine

import "time"

// Clock tracks elapsed play time, excluding time spent paused.
// Owned by the game loop; single-threaded like the Board.
type Clock struct {
	start       time.Time
	paused      bool
	pausedAt    time.Time
	pausedTotal time.Duration
}

// NewClock starts a running clock
func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

// Pause freezes elapsed time accumulation
func (c *Clock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = time.Now()
}

// Resume continues accumulation, folding the pause into the total
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.pausedTotal += time.Since(c.pausedAt)
}

// IsPaused reports the pause state
func (c *Clock) IsPaused() bool {
	return c.paused
}

// Elapsed returns play time since start, pauses excluded
func (c *Clock) Elapsed() time.Duration {
	if c.paused {
		return c.pausedAt.Sub(c.start) - c.pausedTotal
	}
	return time.Since(c.start) - c.pausedTotal
}

// Reset restarts the clock for a new session
func (c *Clock) Reset() {
	c.start = time.Now()
	c.paused = false
	c.pausedTotal = 0
}
