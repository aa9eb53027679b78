package system

import (
	"time"

	"github.com/lixenwraith/pickin-sticks/action"
	"github.com/lixenwraith/pickin-sticks/constants"
	"github.com/lixenwraith/pickin-sticks/engine"
	"github.com/lixenwraith/pickin-sticks/input"
	"github.com/lixenwraith/pickin-sticks/vmath"
)

// InputSystem turns held direction keys into a velocity dispatch every frame
type InputSystem struct {
	ctx   *engine.GameContext
	keys  input.KeySource
	speed float64
}

func NewInputSystem(ctx *engine.GameContext, keys input.KeySource) engine.System {
	return &InputSystem{
		ctx:   ctx,
		keys:  keys,
		speed: constants.PlayerSpeed,
	}
}

func (s *InputSystem) Priority() int {
	return constants.PriorityInput
}

// Update polls the four directions; when opposite keys are both held, down and right win
func (s *InputSystem) Update(_ time.Duration) {
	var vel vmath.Vec2

	if s.keys.IsHeld(input.KeyUp) {
		vel.Y = -s.speed
	}
	if s.keys.IsHeld(input.KeyDown) {
		vel.Y = s.speed
	}
	if s.keys.IsHeld(input.KeyLeft) {
		vel.X = -s.speed
	}
	if s.keys.IsHeld(input.KeyRight) {
		vel.X = s.speed
	}

	s.ctx.Store.Dispatch(action.SetPlayerVelocity{Velocity: vel})
}
