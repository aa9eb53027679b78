// Package input turns terminal key events into held-key state and intents.
package input

//go:generate go tool mockgen -destination=./mocks/keysource_mock.go -package=mocks . KeySource

// Key is a directional control key
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	keyCount
)

var keyNames = [keyCount]string{"up", "down", "left", "right"}

func (k Key) String() string {
	if k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// Directions lists the keys polled every frame, in override order
var Directions = [...]Key{KeyUp, KeyDown, KeyLeft, KeyRight}

// KeySource answers per-key "is held" queries
type KeySource interface {
	IsHeld(k Key) bool
}

// Intent is a discrete command carried by a key press
type Intent uint8

const (
	IntentNone Intent = iota
	IntentMove
	IntentQuit
	IntentReset
	IntentToggleMute
)
