package parameter

import "time"

// Audio defaults
const (
	AudioSampleRate    = 48000
	AudioMasterVolume  = 0.5
	AudioPopVolume     = 0.6
	AudioSpeakerBuffer = 100 * time.Millisecond
)

// Pop sound timing
const (
	PopSoundDuration = 90 * time.Millisecond
	PopSoundAttack   = 4 * time.Millisecond
	PopSoundRelease  = 70 * time.Millisecond

	// PopSoundFrequency is the fundamental; an octave overtone is mixed in
	PopSoundFrequency = 660.0
)
