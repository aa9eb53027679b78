package component

// PositionComponent is the mirrored arena position of an entity
type PositionComponent struct {
	X, Y float64
}

// VelocityComponent is the mirrored velocity of the player
type VelocityComponent struct {
	X, Y float64
}
