package engine

import (
	"time"

	"github.com/lixenwraith/pickin-sticks/constants"
)

// FrameClock measures elapsed time between frames
// Not safe for concurrent use; owned by the frame loop
type FrameClock struct {
	provider TimeProvider
	last     time.Time
	maxDelta time.Duration
}

// NewFrameClock starts a clock at the provider's current time
func NewFrameClock(provider TimeProvider) *FrameClock {
	return &FrameClock{
		provider: provider,
		last:     provider.Now(),
		maxDelta: constants.MaxFrameDelta,
	}
}

// Tick returns the time since the previous Tick (or construction)
// Result is clamped to [0, MaxFrameDelta] so a stalled frame cannot tunnel the player
func (c *FrameClock) Tick() time.Duration {
	now := c.provider.Now()
	dt := now.Sub(c.last)
	c.last = now

	if dt < 0 {
		return 0
	}
	if dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}
