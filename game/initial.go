package game

import (
	"github.com/lixenwraith/pickin-sticks/constants"
	"github.com/lixenwraith/pickin-sticks/state"
	"github.com/lixenwraith/pickin-sticks/vmath"
)

// Initial returns a fresh copy of the starting snapshot: player at arena
// center at rest with no score, one collectible stick at the seed position
func Initial() state.GameState {
	return state.GameState{
		Player: state.Player{
			Position: vmath.Vec2{X: constants.PlayerStartX, Y: constants.PlayerStartY},
			Velocity: state.Some(vmath.Vec2{}),
			Score:    0,
		},
		Sticks: []state.Stick{
			state.NewStick(vmath.Vec2{X: constants.StickStartX, Y: constants.StickStartY}),
		},
	}
}
