package engine

import "time"

// System is a per-frame processor run by World.Update
type System interface {
	Update(dt time.Duration)
	Priority() int // Lower values run first
}
