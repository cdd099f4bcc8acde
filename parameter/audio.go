package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	AudioMasterVolume = 0.5
)

// Chime Sound, played on regenerate
const (
	ChimeNote1Duration = 120 * time.Millisecond
	ChimeNote2Duration = 420 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond
	ChimeNote1Release  = 60 * time.Millisecond
	ChimeNote2Release  = 380 * time.Millisecond
	ChimeNote1Freq     = 1318.51 // E6
	ChimeNote2Freq     = 1760.0  // A6
)

// Gust Sound, played on resize
const (
	GustSoundDuration = 400 * time.Millisecond
	GustSoundAttack   = 180 * time.Millisecond
	GustSoundRelease  = 200 * time.Millisecond
)

// Tick Sound, played on pause toggle
const (
	TickSoundDuration = 30 * time.Millisecond
	TickSoundAttack   = 2 * time.Millisecond
	TickSoundRelease  = 20 * time.Millisecond
	TickSoundFreq     = 660.0
)
