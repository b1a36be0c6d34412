package core

import "time"

// MaxFrameDelta caps the step handed to the simulation so a stalled
// window does not jump every particle by seconds of motion.
const MaxFrameDelta = 0.1

// FrameClock measures the time between display refreshes
type FrameClock struct {
	// Now is the time source; nil means time.Now
	Now func() time.Time

	// Fixed, when > 0, replaces wall time with a constant step (seconds).
	// Used by replays and headless runs.
	Fixed float64

	// Elapsed is the uncapped time since the first tick, in seconds
	Elapsed float64

	start    time.Time
	lastTime time.Time
	started  bool
}

// NewFrameClock creates a clock reading wall time
func NewFrameClock() *FrameClock {
	return &FrameClock{Now: time.Now}
}

// Tick should be called once per frame. It returns the capped delta time
// in seconds; the first tick returns 0.
func (c *FrameClock) Tick() float64 {
	if c.Fixed > 0 {
		dt := CapDelta(c.Fixed)
		c.Elapsed += dt
		return dt
	}

	now := c.now()
	if !c.started {
		c.start = now
		c.lastTime = now
		c.started = true
		return 0
	}

	frameTime := now.Sub(c.lastTime).Seconds()
	c.lastTime = now
	c.Elapsed = now.Sub(c.start).Seconds()

	return CapDelta(frameTime)
}

func (c *FrameClock) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// CapDelta clamps a frame time to [0, MaxFrameDelta]
func CapDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > MaxFrameDelta {
		return MaxFrameDelta
	}
	return dt
}
