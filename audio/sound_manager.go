package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pickin-sticks/constants"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager plays cues through a single mixer on the system speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
}

// NewSoundManager creates a sound manager; Initialize must succeed before cues are audible
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences pending cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// SetMuted toggles cue playback without closing the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// IsMuted reports the mute flag
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// PlayCollect plays the pickup ding
func (sm *SoundManager) PlayCollect() {
	sm.play(CreateCollectSound)
}

// PlayWin plays the win arpeggio
func (sm *SoundManager) PlayWin() {
	sm.play(CreateWinSound)
}

func (sm *SoundManager) play(create func(beep.SampleRate) beep.Streamer) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := create(sampleRate)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
