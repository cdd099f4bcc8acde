package audio

import (
	"errors"
)

// SoundType represents different sound cues
type SoundType int

const (
	SoundChime SoundType = iota // Landscape regenerated
	SoundGust                   // Terminal resized
	SoundTick                   // Snowfall paused or resumed
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"chime", "gust", "tick"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled")
)

// Config holds audio settings
type Config struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// Player plays sound cues; implementations never block the caller
type Player interface {
	Play(SoundType)
	Close()
}

// NoopPlayer discards every cue
type NoopPlayer struct{}

func (NoopPlayer) Play(SoundType) {}
func (NoopPlayer) Close()         {}
