package system

import (
	"github.com/lixenwraith/pickin-sticks/component"
	"github.com/lixenwraith/pickin-sticks/engine"
)

// Synchronizer projects store state onto the entity mirror after every dispatch
// It only overwrites records created by GameContext.SpawnEntities.
// Sticks beyond the mirror's stick count stay unsynced and are not drawn.
type Synchronizer struct {
	ctx         *engine.GameContext
	unsubscribe func()
}

func NewSynchronizer(ctx *engine.GameContext) *Synchronizer {
	return &Synchronizer{ctx: ctx}
}

// Start subscribes to the store; calling it twice is a no-op
func (s *Synchronizer) Start() {
	if s.unsubscribe != nil {
		return
	}
	s.unsubscribe = s.ctx.Store.Subscribe(s.Sync)
}

// Stop unsubscribes from the store
func (s *Synchronizer) Stop() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Sync copies the current state into the mirror
func (s *Synchronizer) Sync() {
	st := s.ctx.Store.GetState()
	w := s.ctx.World

	if player := w.Player(); player != 0 {
		vel := st.Player.VelocityOrZero()
		w.Positions.Set(player, component.PositionComponent{X: st.Player.Position.X, Y: st.Player.Position.Y})
		w.Velocities.Set(player, component.VelocityComponent{X: vel.X, Y: vel.Y})
		w.Scores.Set(player, component.ScoreComponent{Value: st.Player.Score})
	}

	for i, e := range w.Sticks() {
		if i >= len(st.Sticks) {
			break
		}
		stick := st.Sticks[i]
		w.Positions.Set(e, component.PositionComponent{X: stick.Position.X, Y: stick.Position.Y})
		w.Collectibles.Set(e, component.CollectibleComponent{Active: stick.IsCollectible()})
	}
}
