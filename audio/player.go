// Package audio synthesizes and plays the game's sound cues.
package audio

//go:generate go tool mockgen -destination=./mocks/player_mock.go -package=mocks . Player

// Player plays game cues; implementations must not block the frame loop
type Player interface {
	PlayCollect()
	PlayWin()
}

// Nop is a silent Player used when audio is muted or unavailable
type Nop struct{}

func (Nop) PlayCollect() {}
func (Nop) PlayWin()     {}
