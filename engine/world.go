package engine

import (
	"slices"
	"sync"
	"time"

	"github.com/lixenwraith/pickin-sticks/component"
	"github.com/lixenwraith/pickin-sticks/core"
)

// World is the render-facing entity mirror with typed component stores
// It is a projection of the store state and never a source of truth
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Positions    *Store[component.PositionComponent]
	Velocities   *Store[component.VelocityComponent]
	Collectibles *Store[component.CollectibleComponent]
	Scores       *Store[component.ScoreComponent]
	Players      *Store[component.PlayerControlledComponent]

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Positions:    NewStore[component.PositionComponent](),
		Velocities:   NewStore[component.VelocityComponent](),
		Collectibles: NewStore[component.CollectibleComponent](),
		Scores:       NewStore[component.ScoreComponent](),
		Players:      NewStore[component.PlayerControlledComponent](),
		systems:      make([]System, 0, 4),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}


// AddSystem adds a system to the world and keeps systems sorted by priority
// Equal priorities keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	slices.SortStableFunc(w.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially in priority order
func (w *World) Update(dt time.Duration) {
	w.RunSafe(func() {
		for _, system := range w.Systems() {
			system.Update(dt)
		}
	})
}

// Player returns the player-controlled entity, zero if none exists
func (w *World) Player() core.Entity {
	players := w.Players.All()
	if len(players) == 0 {
		return 0
	}
	return players[0]
}

// Sticks returns stick entities in mirror order (creation order)
func (w *World) Sticks() []core.Entity {
	return w.Collectibles.All()
}
