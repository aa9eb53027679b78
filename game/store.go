package game

import (
	"github.com/lixenwraith/pickin-sticks/action"
	"github.com/lixenwraith/pickin-sticks/state"
	"github.com/lixenwraith/pickin-sticks/store"
)

// Store is the game's state store
type Store = store.Store[state.GameState, action.Action]

// StoreOption configures a game Store
type StoreOption = store.Option[state.GameState, action.Action]

// NewStore creates a store seeded with the initial snapshot
func NewStore(rules *Rules, opts ...StoreOption) *Store {
	return store.New(rules.Reduce, Initial(), state.GameState.Clone, opts...)
}

// WithTracer observes every applied action with its nesting depth
func WithTracer(fn func(a action.Action, depth int)) StoreOption {
	return store.WithTracer[state.GameState, action.Action](fn)
}
