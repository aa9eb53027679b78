package constants

import "time"

// Audio cue timing
const (
	// Collect cue: short two-partial ding
	CollectSoundDuration         = 180 * time.Millisecond
	CollectSoundAttack           = 5 * time.Millisecond
	CollectSoundFundamentalFreq  = 880.0 // A5
	CollectSoundOvertoneFreq     = 1760.0
	CollectSoundFundamentalDecay = 170 * time.Millisecond
	CollectSoundOvertoneDecay    = 90 * time.Millisecond

	// Win cue: rising three-note arpeggio
	WinSoundNoteDuration = 140 * time.Millisecond
	WinSoundAttack       = 5 * time.Millisecond
	WinSoundRelease      = 60 * time.Millisecond

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioSampleRate is the output sample rate in Hz
	AudioSampleRate = 48000

	// MasterVolume scales every cue (0.0 - 1.0)
	MasterVolume = 0.6
)

// WinSoundNotes are the arpeggio frequencies (C5 E5 G5)
var WinSoundNotes = [...]float64{523.25, 659.25, 783.99}
