package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pickin-sticks/constants"
	"github.com/lixenwraith/pickin-sticks/engine"
)

// HeldKeys tracks directional keys from press and auto-repeat events
// Terminals send no key-up, so a key counts as held until an expiry set by its last event:
// a fresh press covers the auto-repeat delay, each repeat extends by the shorter window
type HeldKeys struct {
	mu       sync.Mutex
	provider engine.TimeProvider
	initial  time.Duration
	repeat   time.Duration
	until    [keyCount]time.Time
	pressed  [keyCount]bool
}

// NewHeldKeys creates a tracker with the default hold windows
func NewHeldKeys(provider engine.TimeProvider) *HeldKeys {
	return &HeldKeys{
		provider: provider,
		initial:  constants.KeyInitialHoldWindow,
		repeat:   constants.KeyHoldWindow,
	}
}

// HandleEvent records a key event and returns the intent it carries
func (h *HeldKeys) HandleEvent(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return IntentQuit
	case tcell.KeyUp:
		h.press(KeyUp)
		return IntentMove
	case tcell.KeyDown:
		h.press(KeyDown)
		return IntentMove
	case tcell.KeyLeft:
		h.press(KeyLeft)
		return IntentMove
	case tcell.KeyRight:
		h.press(KeyRight)
		return IntentMove
	case tcell.KeyRune:
		return h.handleRune(ev.Rune())
	}
	return IntentNone
}

func (h *HeldKeys) handleRune(r rune) Intent {
	switch r {
	case 'q', 'Q':
		return IntentQuit
	case 'r', 'R':
		h.Clear()
		return IntentReset
	case 'm', 'M':
		return IntentToggleMute
	case 'w', 'W', 'k', 'K':
		h.press(KeyUp)
	case 's', 'S', 'j', 'J':
		h.press(KeyDown)
	case 'a', 'A', 'h', 'H':
		h.press(KeyLeft)
	case 'd', 'D', 'l', 'L':
		h.press(KeyRight)
	default:
		return IntentNone
	}
	return IntentMove
}

func (h *HeldKeys) press(k Key) {
	now := h.provider.Now()
	h.mu.Lock()
	if h.heldAt(k, now) {
		h.until[k] = now.Add(h.repeat)
	} else {
		h.until[k] = now.Add(h.initial)
	}
	h.pressed[k] = true
	// Opposite direction is released; a new press means the player turned
	switch k {
	case KeyUp:
		h.pressed[KeyDown] = false
	case KeyDown:
		h.pressed[KeyUp] = false
	case KeyLeft:
		h.pressed[KeyRight] = false
	case KeyRight:
		h.pressed[KeyLeft] = false
	}
	h.mu.Unlock()
}

// heldAt requires h.mu
func (h *HeldKeys) heldAt(k Key, now time.Time) bool {
	return h.pressed[k] && !now.After(h.until[k])
}

// IsHeld reports whether k is within its hold window
func (h *HeldKeys) IsHeld(k Key) bool {
	if k >= keyCount {
		return false
	}
	now := h.provider.Now()
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.heldAt(k, now)
}

// Clear releases every key
func (h *HeldKeys) Clear() {
	h.mu.Lock()
	h.pressed = [keyCount]bool{}
	h.mu.Unlock()
}
