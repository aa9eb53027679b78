package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/pickin-sticks/component"
	"github.com/lixenwraith/pickin-sticks/constants"
	"github.com/lixenwraith/pickin-sticks/core"
	"github.com/lixenwraith/pickin-sticks/game"
	"github.com/lixenwraith/pickin-sticks/state"
	"github.com/lixenwraith/pickin-sticks/status"
)

// GameContext wires the store, the entity mirror and shared run flags
type GameContext struct {
	// ===== Immutable After Init =====

	Store  *game.Store      // Authoritative state; mutated only through Dispatch
	World  *World           // Entity mirror; written by the synchronizer
	Status *status.Registry // Counters shown on the debug line
	RunID  string           // Log correlation id

	// ===== Set By SpawnEntities =====

	PlayerEntity core.Entity

	// ===== Atomic (Self-Synchronized) =====

	FrameNumber atomic.Int64
	won         atomic.Bool
	IsMuted     atomic.Bool
}

// NewGameContext creates a context over an existing store and world
func NewGameContext(store *game.Store, world *World, registry *status.Registry) *GameContext {
	if registry == nil {
		registry = status.NewRegistry()
	}
	return &GameContext{
		Store:  store,
		World:  world,
		Status: registry,
	}
}

// SpawnEntities creates the mirror records for s: one player and one entity per stick
// Called once at startup; the synchronizer only overwrites these records afterwards
func (ctx *GameContext) SpawnEntities(s state.GameState) {
	w := ctx.World

	player := w.CreateEntity()
	vel := s.Player.VelocityOrZero()
	w.Positions.Set(player, component.PositionComponent{X: s.Player.Position.X, Y: s.Player.Position.Y})
	w.Velocities.Set(player, component.VelocityComponent{X: vel.X, Y: vel.Y})
	w.Scores.Set(player, component.ScoreComponent{Value: s.Player.Score})
	w.Players.Set(player, component.PlayerControlledComponent{Speed: constants.PlayerSpeed})
	ctx.PlayerEntity = player

	for _, st := range s.Sticks {
		e := w.CreateEntity()
		w.Positions.Set(e, component.PositionComponent{X: st.Position.X, Y: st.Position.Y})
		w.Collectibles.Set(e, component.CollectibleComponent{Active: st.IsCollectible()})
	}
}

// === Frame Number Accessors ===

// GetFrameNumber returns the live frame index
func (ctx *GameContext) GetFrameNumber() int64 {
	return ctx.FrameNumber.Load()
}

// IncrementFrameNumber advances the frame counter (called by the frame loop)
func (ctx *GameContext) IncrementFrameNumber() int64 {
	return ctx.FrameNumber.Add(1)
}

// === Win Signal ===

// SignalWin raises the win flag, returns true only on the first transition
func (ctx *GameContext) SignalWin() bool {
	return ctx.won.CompareAndSwap(false, true)
}

// HasWon reports whether the win flag is raised
func (ctx *GameContext) HasWon() bool {
	return ctx.won.Load()
}

// ClearWin lowers the win flag after a game reset
func (ctx *GameContext) ClearWin() {
	ctx.won.Store(false)
}
