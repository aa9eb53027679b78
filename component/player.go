package component

// PlayerControlledComponent marks the player entity (singleton)
type PlayerControlledComponent struct {
	// Speed is the per-axis input speed in arena units per second
	Speed float64
}

// ScoreComponent is the mirrored player score
type ScoreComponent struct {
	Value int
}
