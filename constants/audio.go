package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Select Chime Timing
const (
	SelectNote1Duration = 60 * time.Millisecond
	SelectNote2Duration = 120 * time.Millisecond
)

// Cue Durations
const (
	PlaceSoundDuration  = 90 * time.Millisecond
	RemoveSoundDuration = 200 * time.Millisecond
	ClearSoundDuration  = 400 * time.Millisecond
)
