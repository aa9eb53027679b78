// Package state defines the authoritative game state owned by the store.
package state

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/pickin-sticks/vmath"
)

// Player is the controlled circle
type Player struct {
	Position vmath.Vec2
	// Velocity may be removed; readers default to zero
	Velocity Opt[vmath.Vec2]
	Score    int
}

// VelocityOrZero returns the velocity, or {0,0} when absent
func (p Player) VelocityOrZero() vmath.Vec2 {
	return p.Velocity.Or(vmath.Vec2{})
}

// Stick is a collectible; its index in GameState.Sticks is its identity
type Stick struct {
	Position vmath.Vec2
	// Collectible may be removed; readers default to false
	Collectible Opt[bool]
}

// IsCollectible returns the collectible flag, false when absent
func (s Stick) IsCollectible() bool {
	return s.Collectible.Or(false)
}

// NewStick returns a collectible stick at p
func NewStick(p vmath.Vec2) Stick {
	return Stick{Position: p, Collectible: Some(true)}
}

// GameState is the single state root
type GameState struct {
	Player Player
	Sticks []Stick
}

// Clone returns a deep copy sharing no memory with s
func (s GameState) Clone() GameState {
	c := s
	c.Sticks = slices.Clone(s.Sticks)
	return c
}

// HasStick reports whether i addresses an existing stick
func (s GameState) HasStick(i int) bool {
	return i >= 0 && i < len(s.Sticks)
}

// Equal reports deep equality
func (s GameState) Equal(o GameState) bool {
	return s.Player == o.Player && slices.Equal(s.Sticks, o.Sticks)
}

func (s GameState) String() string {
	return fmt.Sprintf("player{pos=%v vel=%v score=%d} sticks=%d",
		s.Player.Position, s.Player.VelocityOrZero(), s.Player.Score, len(s.Sticks))
}
