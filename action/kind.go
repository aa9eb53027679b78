package action

// Kind identifies an action variant
type Kind int

const (
	// KindGeneratePosition requests a random spawn point
	// Reducer: state unchanged | Payload: none
	KindGeneratePosition Kind = iota

	// KindResetGame replaces the state with a fresh initial snapshot
	// Payload: none
	KindResetGame

	// KindSetPlayerPosition overwrites the player position without clamping
	// Payload: Position
	KindSetPlayerPosition

	// KindSetPlayerVelocity overwrites the player velocity
	// Trigger: InputSystem each frame | Payload: Velocity
	KindSetPlayerVelocity

	// KindMovePlayer integrates velocity over elapsed time and clamps to the arena
	// Trigger: MovementSystem each frame | Payload: DeltaTime
	KindMovePlayer

	// KindCollectStick marks a stick collected and scores it
	// Trigger: CollectSticks follow-up | Follow-up: RespawnStick | Payload: Index
	KindCollectStick

	// KindCollectSticks scans for the first stick in pickup range
	// Trigger: CollectionSystem each frame | Follow-up: CollectStick | Payload: none
	KindCollectSticks

	// KindResetStick makes a stick collectible in place
	// Payload: Index
	KindResetStick

	// KindRespawnStick moves a stick to a random spawn point and makes it collectible
	// Trigger: CollectStick follow-up | Payload: Index
	KindRespawnStick

	// KindSetStickPosition places a stick and makes it collectible
	// Payload: Index, Position
	KindSetStickPosition

	// KindAddStick appends a stick
	// Payload: Stick
	KindAddStick

	// KindRemovePlayerProperty clears an optional player field
	// Payload: Name
	KindRemovePlayerProperty

	// KindRemoveStickProperty clears an optional stick field
	// Payload: Index, Name
	KindRemoveStickProperty

	kindCount
)

var kindNames = [kindCount]string{
	KindGeneratePosition:     "GENERATE_POSITION",
	KindResetGame:            "RESET_GAME",
	KindSetPlayerPosition:    "SET_PLAYER_POSITION",
	KindSetPlayerVelocity:    "SET_PLAYER_VELOCITY",
	KindMovePlayer:           "MOVE_PLAYER",
	KindCollectStick:         "COLLECT_STICK",
	KindCollectSticks:        "COLLECT_STICKS",
	KindResetStick:           "RESET_STICK",
	KindRespawnStick:         "RESPAWN_STICK",
	KindSetStickPosition:     "SET_STICK_POSITION",
	KindAddStick:             "ADD_STICK",
	KindRemovePlayerProperty: "REMOVE_PLAYER_PROPERTY",
	KindRemoveStickProperty:  "REMOVE_STICK_PROPERTY",
}

// String returns the catalog name of the kind
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// Kinds returns every catalog kind in declaration order
func Kinds() []Kind {
	ks := make([]Kind, kindCount)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}
