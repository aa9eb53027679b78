package system

import (
	"github.com/lixenwraith/pickin-sticks/audio"
	"github.com/lixenwraith/pickin-sticks/constants"
	"github.com/lixenwraith/pickin-sticks/engine"
)

// AudioSystem plays cues on score changes observed through store notifications
type AudioSystem struct {
	ctx         *engine.GameContext
	player      audio.Player
	unsubscribe func()

	lastScore int
	winPlayed bool
}

func NewAudioSystem(ctx *engine.GameContext, player audio.Player) *AudioSystem {
	return &AudioSystem{
		ctx:       ctx,
		player:    player,
		lastScore: ctx.Store.GetState().Player.Score,
	}
}

// Start subscribes to the store; calling it twice is a no-op
func (s *AudioSystem) Start() {
	if s.unsubscribe != nil {
		return
	}
	s.unsubscribe = s.ctx.Store.Subscribe(s.onChange)
}

// Stop unsubscribes from the store
func (s *AudioSystem) Stop() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *AudioSystem) onChange() {
	score := s.ctx.Store.GetState().Player.Score

	switch {
	case score < s.lastScore:
		// Game reset
		s.winPlayed = false
	case score > s.lastScore:
		muted := s.ctx.IsMuted.Load()
		if !muted {
			s.player.PlayCollect()
		}
		if score >= constants.WinScore && !s.winPlayed {
			s.winPlayed = true
			if !muted {
				s.player.PlayWin()
			}
		}
	}
	s.lastScore = score
}
