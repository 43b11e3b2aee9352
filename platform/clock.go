package platform

import "time"

// maxDt caps a single step so a stalled frame does not tunnel bodies
// through the level.
const maxDt = 0.1

// Clock measures the time between frames.
type Clock struct {
	last  time.Time
	frame time.Duration
}

func NewClock(now time.Time) *Clock {
	return &Clock{last: now}
}

// Tick records a new frame at now and returns the elapsed seconds, capped
// at maxDt.
func (c *Clock) Tick(now time.Time) float64 {
	c.frame = now.Sub(c.last)
	c.last = now
	return min(c.frame.Seconds(), maxDt)
}

// FrameMS is the length of the last frame in milliseconds.
func (c *Clock) FrameMS() float64 {
	return float64(c.frame.Microseconds()) / 1000
}

// FPS is the rate the last frame would sustain.
func (c *Clock) FPS() float64 {
	if c.frame <= 0 {
		return 0
	}
	return 1 / c.frame.Seconds()
}
