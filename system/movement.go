package system

import (
	"time"

	"github.com/lixenwraith/pickin-sticks/action"
	"github.com/lixenwraith/pickin-sticks/constants"
	"github.com/lixenwraith/pickin-sticks/engine"
)

// MovementSystem advances the player by the frame's elapsed time
type MovementSystem struct {
	ctx *engine.GameContext
}

func NewMovementSystem(ctx *engine.GameContext) engine.System {
	return &MovementSystem{ctx: ctx}
}

func (s *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

func (s *MovementSystem) Update(dt time.Duration) {
	s.ctx.Store.Dispatch(action.MovePlayer{DeltaTime: dt.Seconds()})
}
