package audio

import "testing"

// Cues before Initialize must be dropped without touching the speaker
func TestSoundManagerUninitializedIsNoop(t *testing.T) {
	sm := NewSoundManager()
	sm.PlayCollect()
	sm.PlayWin()
	sm.Cleanup()

	if sm.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers, want 0", sm.mixer.Len())
	}
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager()
	if sm.IsMuted() {
		t.Fatal("new manager muted")
	}
	sm.SetMuted(true)
	if !sm.IsMuted() {
		t.Error("SetMuted(true) not reflected")
	}
	sm.PlayCollect()
	if sm.mixer.Len() != 0 {
		t.Error("muted manager queued a cue")
	}
}

func TestNopPlayer(t *testing.T) {
	var p Player = Nop{}
	p.PlayCollect()
	p.PlayWin()
}
