package constants

import "time"

// Arena Dimensions
const (
	// ArenaWidth is the logical arena width in world units
	ArenaWidth = 800

	// ArenaHeight is the logical arena height in world units
	ArenaHeight = 600
)

// Entity Sizes
const (
	// PlayerRadius is the drawn radius of the player circle
	PlayerRadius = 20

	// StickRadius is the drawn radius of a stick
	StickRadius = 10

	// CollectionRadius is the maximum player-to-stick distance for pickup (inclusive)
	CollectionRadius = 20
)

// Spawn
const (
	// PlayerStartX and PlayerStartY place the player at arena center
	PlayerStartX = ArenaWidth / 2
	PlayerStartY = ArenaHeight / 2

	// StickStartX and StickStartY are the seed stick position of a fresh game
	StickStartX = 100
	StickStartY = 100

	// StickSpawnMargin keeps respawned sticks away from the arena edges
	StickSpawnMargin = 50
)

// Gameplay
const (
	// PlayerSpeed is the per-axis speed in world units per second
	PlayerSpeed = 200.0

	// WinScore is the score at which the win condition is signaled
	WinScore = 2
)

// Game Loop Timing
const (
	// FrameUpdateInterval is the frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single frame step after stalls (suspend, debugger)
	MaxFrameDelta = 250 * time.Millisecond

	// KeyInitialHoldWindow holds a fresh press past the terminal's auto-repeat delay
	// (commonly 250-600ms) so a held key moves without a gap before repeats begin
	KeyInitialHoldWindow = 600 * time.Millisecond

	// KeyHoldWindow is how long a key stays held after an auto-repeat.
	// Terminals report no key release, so holding relies on repeats refreshing it.
	KeyHoldWindow = 180 * time.Millisecond
)

// System priorities, lower runs first
const (
	PriorityInput      = 10
	PriorityMovement   = 20
	PriorityCollection = 30
)
