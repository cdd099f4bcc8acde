package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/snowscape/parameter"
	"github.com/lixenwraith/snowscape/vmath"
)

// DefaultConfig returns disabled audio with every cue at full effect volume
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:       false,
		MasterVolume:  parameter.AudioMasterVolume,
		EffectVolumes: make(map[SoundType]float64, soundTypeCount),
		SampleRate:    parameter.AudioSampleRate,
	}
	for s := SoundType(0); s < soundTypeCount; s++ {
		cfg.EffectVolumes[s] = 1.0
	}
	return cfg
}

// LoadConfig loads audio tuning from environment variables
// Enabled is left to the caller; the on/off switch is config.Config.Audio
func LoadConfig() *Config {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) *Config {
	cfg := DefaultConfig()

	// Master volume 0-100 converted to 0.0-1.0
	if volume := getenv("SNOWSCAPE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = vmath.ClampFloat(float64(val)/100.0, 0, 1)
		}
	}

	// Effect volumes as JSON keyed by cue name
	if effectVols := getenv("SNOWSCAPE_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for s := SoundType(0); s < soundTypeCount; s++ {
				if v, ok := volumes[s.String()]; ok {
					cfg.EffectVolumes[s] = vmath.ClampFloat(v, 0, 1)
				}
			}
		}
	}

	if sampleRate := getenv("SNOWSCAPE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
