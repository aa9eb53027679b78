package status

import "sync/atomic"

// Metric names
const (
	MetricDispatch   = "store.dispatch"
	MetricFrames     = "frame.count"
	MetricCollected  = "game.collected"
	dispatchKindStem = "store.dispatch."
)

// Registry is the central metrics facade
// Producers cache counter pointers at construction and add to them in hot paths
type Registry struct {
	Ints *MetricMap[atomic.Int64]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints: NewMetricMap[atomic.Int64](),
	}
}

// Counter returns the named counter
func (r *Registry) Counter(name string) *atomic.Int64 {
	return r.Ints.Get(name)
}

// DispatchCounter returns the per-kind dispatch counter
func (r *Registry) DispatchCounter(kind string) *atomic.Int64 {
	return r.Ints.Get(dispatchKindStem + kind)
}

// Snapshot returns current counter values keyed by name
func (r *Registry) Snapshot() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = ptr.Load()
	})
	return out
}
