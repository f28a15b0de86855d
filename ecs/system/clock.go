package system

import (
	"time"

	"github.com/milk9111/npchit/ecs"
)

const DefaultTPS = 60

// TimeSource reports simulated game time.
type TimeSource interface {
	Now() time.Duration
}

// Clock is fixed-step game time. It advances one tick per Update, so at 60
// TPS 60s is exactly 3600 ticks and 900ms exactly 54.
type Clock struct {
	tps   int
	ticks int64
}

func NewClock(tps int) *Clock {
	if tps <= 0 {
		tps = DefaultTPS
	}
	return &Clock{tps: tps}
}

// Update advances the clock by one tick. Register it first so every later
// system sees the new time.
func (c *Clock) Update(_ *ecs.World) {
	c.Advance()
}

func (c *Clock) Advance() {
	c.ticks++
}

// Now returns the time elapsed since the clock was created.
func (c *Clock) Now() time.Duration {
	return time.Duration(c.ticks) * time.Second / time.Duration(c.tps)
}

func (c *Clock) Ticks() int64 {
	return c.ticks
}

// Step returns the nominal length of one tick.
func (c *Clock) Step() time.Duration {
	return time.Second / time.Duration(c.tps)
}
