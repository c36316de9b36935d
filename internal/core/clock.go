package core

import "time"

// Clock counts fixed-rate simulation ticks. Elapsed time is derived from the
// tick count, so it never drifts from the simulation.
type Clock struct {
	rate  int
	ticks uint64
}

// NewClock creates a clock running at rate ticks per second.
// Non-positive rates fall back to 60.
func NewClock(rate int) *Clock {
	if rate <= 0 {
		rate = 60
	}
	return &Clock{rate: rate}
}

// Rate returns ticks per second.
func (c *Clock) Rate() int {
	return c.rate
}

// Interval returns the wall-clock duration of one tick.
func (c *Clock) Interval() time.Duration {
	return time.Second / time.Duration(c.rate)
}

// Advance moves the clock forward one tick and returns the new tick count.
func (c *Clock) Advance() uint64 {
	c.ticks++
	return c.ticks
}

// Ticks returns the number of ticks since the clock was created.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Elapsed returns simulated time between tick since and now.
func (c *Clock) Elapsed(since uint64) time.Duration {
	if since >= c.ticks {
		return 0
	}
	return time.Duration(c.ticks-since) * time.Second / time.Duration(c.rate)
}
