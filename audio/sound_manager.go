// Package audio plays short synthesized cues for builder actions
//
// Audio is optional: every method is safe before Initialize and after
// Cleanup, and a failed speaker init leaves the manager silent.
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/orrery/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager owns the speaker and a mixer all cues are added to
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
	played      [cueCount]int
}

// NewSoundManager creates a silent manager at full volume
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: 1,
	}
}

// Initialize sets up the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetVolume sets linear volume in [0, 1]
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = min(max(v, 0), 1)
}

// SetMuted toggles output without releasing the speaker
func (sm *SoundManager) SetMuted(m bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = m
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues a cue; no-op while uninitialized or muted
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || c < 0 || c >= cueCount {
		return
	}
	s := newCue(c, sampleRate)
	if s == nil {
		return
	}
	sm.played[c]++

	speaker.Lock()
	sm.mixer.Add(newVolume(s, sm.volume))
	speaker.Unlock()
}

// PlaySelect plays the selection chime
func (sm *SoundManager) PlaySelect() { sm.Play(CueSelect) }

// PlayPlace plays the add blip
func (sm *SoundManager) PlayPlace() { sm.Play(CuePlace) }

// PlayRemove plays the delete thud
func (sm *SoundManager) PlayRemove() { sm.Play(CueRemove) }

// PlayClear plays the clear sweep
func (sm *SoundManager) PlayClear() { sm.Play(CueClear) }

// Played returns how many times c was queued
func (sm *SoundManager) Played(c Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if c < 0 || c >= cueCount {
		return 0
	}
	return sm.played[c]
}
