package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/snowscape/parameter"
	"github.com/lixenwraith/snowscape/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      vmath.NewFastRand(uint64(time.Now().UnixNano())),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := e.gain()
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

// gain returns the envelope level at the current position
func (e *envelope) gain() float64 {
	if e.position < e.attackSamples && e.attackSamples > 0 {
		return float64(e.position) / float64(e.attackSamples)
	}
	releaseStart := e.attackSamples + e.sustainSamples
	if e.position >= releaseStart && e.releaseSamples > 0 {
		remaining := e.totalSamples - e.position
		return vmath.ClampFloat(float64(remaining)/float64(e.releaseSamples), 0, 1)
	}
	return 1.0
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear volume; 0 or below is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateChimeSound generates a rising two-note chime for a new landscape
func CreateChimeSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(parameter.ChimeNote1Freq, parameter.ChimeNote1Duration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, parameter.ChimeNote1Duration, parameter.ChimeAttack, parameter.ChimeNote1Release, rate)

	n2 := NewOscillator(parameter.ChimeNote2Freq, parameter.ChimeNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, parameter.ChimeNote2Duration, parameter.ChimeAttack, parameter.ChimeNote2Release, rate)

	vol := cfg.EffectVolumes[SoundChime] * cfg.MasterVolume
	return newVolume(beep.Seq(n1Shaped, n2Shaped), vol)
}

// CreateGustSound generates a soft swell of wind noise
func CreateGustSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.GustSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.GustSoundDuration, parameter.GustSoundAttack, parameter.GustSoundRelease, rate)

	vol := cfg.EffectVolumes[SoundGust] * cfg.MasterVolume * 0.4
	return newVolume(shaped, vol)
}

// CreateTickSound generates a short click
func CreateTickSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(parameter.TickSoundFreq, parameter.TickSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.TickSoundDuration, parameter.TickSoundAttack, parameter.TickSoundRelease, rate)

	vol := cfg.EffectVolumes[SoundTick] * cfg.MasterVolume * 0.5
	return newVolume(shaped, vol)
}

// GetSoundEffect returns the streamer for the given cue, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *Config) beep.Streamer {
	switch soundType {
	case SoundChime:
		return CreateChimeSound(cfg)
	case SoundGust:
		return CreateGustSound(cfg)
	case SoundTick:
		return CreateTickSound(cfg)
	default:
		return nil
	}
}
