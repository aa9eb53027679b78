// Package game holds the reducer that drives the pickin-sticks state machine.
package game

import (
	"slices"

	"github.com/lixenwraith/pickin-sticks/action"
	"github.com/lixenwraith/pickin-sticks/constants"
	"github.com/lixenwraith/pickin-sticks/state"
	"github.com/lixenwraith/pickin-sticks/vmath"
)

// Rules is the transition function and the parameters it closes over
// The random source is the only impurity; seed it for deterministic runs
type Rules struct {
	Width, Height    float64
	SpawnMargin      int
	CollectionRadius float64

	rng *vmath.FastRand
}

// NewRules creates rules for the standard arena
func NewRules(seed uint64) *Rules {
	return &Rules{
		Width:            constants.ArenaWidth,
		Height:           constants.ArenaHeight,
		SpawnMargin:      constants.StickSpawnMargin,
		CollectionRadius: constants.CollectionRadius,
		rng:              vmath.NewFastRand(seed),
	}
}

// GeneratePosition returns a random integral point inside the spawn region
// [margin, width-margin] x [margin, height-margin]; it does not touch state
func (r *Rules) GeneratePosition() vmath.Vec2 {
	return vmath.Vec2{
		X: float64(r.rng.IntRange(r.SpawnMargin, int(r.Width)-r.SpawnMargin)),
		Y: float64(r.rng.IntRange(r.SpawnMargin, int(r.Height)-r.SpawnMargin)),
	}
}

// Reduce computes the next state and follow-up actions
// The incoming state is never mutated; sticks are copied on write
// Out-of-range indices, absent optionals and unknown action types leave state unchanged
func (r *Rules) Reduce(s state.GameState, a action.Action) (state.GameState, []action.Action) {
	switch a := a.(type) {
	case action.GeneratePosition:
		return s, nil

	case action.ResetGame:
		return Initial(), nil

	case action.SetPlayerPosition:
		s.Player.Position = a.Position
		return s, nil

	case action.SetPlayerVelocity:
		s.Player.Velocity = state.Some(a.Velocity)
		return s, nil

	case action.MovePlayer:
		step := vmath.V2Scale(s.Player.VelocityOrZero(), a.DeltaTime)
		s.Player.Position = vmath.ClampToArena(vmath.V2Add(s.Player.Position, step), r.Width, r.Height)
		return s, nil

	case action.CollectStick:
		if !s.HasStick(a.Index) {
			return s, nil
		}
		s.Sticks = slices.Clone(s.Sticks)
		s.Sticks[a.Index].Collectible = state.Some(false)
		s.Player.Score++
		return s, []action.Action{action.RespawnStick{Index: a.Index}}

	case action.RespawnStick:
		if !s.HasStick(a.Index) {
			return s, nil
		}
		s.Sticks = slices.Clone(s.Sticks)
		s.Sticks[a.Index] = state.NewStick(r.GeneratePosition())
		return s, nil

	case action.SetStickPosition:
		if !s.HasStick(a.Index) {
			return s, nil
		}
		s.Sticks = slices.Clone(s.Sticks)
		s.Sticks[a.Index] = state.NewStick(a.Position)
		return s, nil

	case action.ResetStick:
		if !s.HasStick(a.Index) {
			return s, nil
		}
		s.Sticks = slices.Clone(s.Sticks)
		s.Sticks[a.Index].Collectible = state.Some(true)
		return s, nil

	case action.CollectSticks:
		if i, ok := r.firstInRange(s); ok {
			return s, []action.Action{action.CollectStick{Index: i}}
		}
		return s, nil

	case action.AddStick:
		s.Sticks = append(slices.Clip(s.Sticks), a.Stick)
		return s, nil

	case action.RemovePlayerProperty:
		if a.Name == action.PropVelocity {
			s.Player.Velocity = state.None[vmath.Vec2]()
		}
		return s, nil

	case action.RemoveStickProperty:
		if !s.HasStick(a.Index) || a.Name != action.PropCollectible {
			return s, nil
		}
		s.Sticks = slices.Clone(s.Sticks)
		s.Sticks[a.Index].Collectible = state.None[bool]()
		return s, nil
	}

	return s, nil
}

// firstInRange returns the lowest index of a collectible stick within pickup range
func (r *Rules) firstInRange(s state.GameState) (int, bool) {
	for i, stick := range s.Sticks {
		if !stick.IsCollectible() {
			continue
		}
		if vmath.V2Within(s.Player.Position, stick.Position, r.CollectionRadius) {
			return i, true
		}
	}
	return 0, false
}
