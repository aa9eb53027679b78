// Package action is the closed catalog of state transitions accepted by the store.
// Constructing an action never fails; validation belongs to the reducer.
package action

import (
	"github.com/lixenwraith/pickin-sticks/state"
	"github.com/lixenwraith/pickin-sticks/vmath"
)

// Action is a tagged, immutable description of an intended state change
// Sealed: only the variants below implement it
type Action interface {
	Kind() Kind
	isAction()
}

// Property names an optional field that can be removed
type Property string

const (
	PropVelocity    Property = "velocity"
	PropCollectible Property = "collectible"
)

type GeneratePosition struct{}

type ResetGame struct{}

type SetPlayerPosition struct {
	Position vmath.Vec2
}

type SetPlayerVelocity struct {
	Velocity vmath.Vec2
}

// MovePlayer carries elapsed seconds since the previous frame
type MovePlayer struct {
	DeltaTime float64
}

type CollectStick struct {
	Index int
}

type CollectSticks struct{}

type ResetStick struct {
	Index int
}

type RespawnStick struct {
	Index int
}

type SetStickPosition struct {
	Index    int
	Position vmath.Vec2
}

type AddStick struct {
	Stick state.Stick
}

type RemovePlayerProperty struct {
	Name Property
}

type RemoveStickProperty struct {
	Index int
	Name  Property
}

func (GeneratePosition) Kind() Kind     { return KindGeneratePosition }
func (ResetGame) Kind() Kind            { return KindResetGame }
func (SetPlayerPosition) Kind() Kind    { return KindSetPlayerPosition }
func (SetPlayerVelocity) Kind() Kind    { return KindSetPlayerVelocity }
func (MovePlayer) Kind() Kind           { return KindMovePlayer }
func (CollectStick) Kind() Kind         { return KindCollectStick }
func (CollectSticks) Kind() Kind        { return KindCollectSticks }
func (ResetStick) Kind() Kind           { return KindResetStick }
func (RespawnStick) Kind() Kind         { return KindRespawnStick }
func (SetStickPosition) Kind() Kind     { return KindSetStickPosition }
func (AddStick) Kind() Kind             { return KindAddStick }
func (RemovePlayerProperty) Kind() Kind { return KindRemovePlayerProperty }
func (RemoveStickProperty) Kind() Kind  { return KindRemoveStickProperty }

func (GeneratePosition) isAction()     {}
func (ResetGame) isAction()            {}
func (SetPlayerPosition) isAction()    {}
func (SetPlayerVelocity) isAction()    {}
func (MovePlayer) isAction()           {}
func (CollectStick) isAction()         {}
func (CollectSticks) isAction()        {}
func (ResetStick) isAction()           {}
func (RespawnStick) isAction()         {}
func (SetStickPosition) isAction()     {}
func (AddStick) isAction()             {}
func (RemovePlayerProperty) isAction() {}
func (RemoveStickProperty) isAction()  {}
