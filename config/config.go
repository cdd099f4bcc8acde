package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/snowscape/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config is the runtime configuration of the renderer
type Config struct {
	// Seed for the landscape; 0 picks one from the clock
	Seed int64

	Density      float64
	Frequency    float64
	Amplitude    float64
	TerrainRatio float64

	// Interval between snow updates
	Interval time.Duration
	FPS      int

	Audio      bool
	ShowStatus bool
	LogFile    string

	// Headless dump
	Once   bool
	Frames int
	Width  int
	Height int
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Density:      parameter.FlakeDensity,
		Frequency:    parameter.HillFrequency,
		Amplitude:    parameter.HillAmplitude,
		TerrainRatio: parameter.TerrainRatio,
		Interval:     parameter.SnowUpdateInterval,
		FPS:          parameter.TargetFPS,
		Frames:       parameter.DefaultHeadlessFrames,
		Width:        parameter.DefaultHeadlessWidth,
		Height:       parameter.DefaultHeadlessHeight,
	}
}

// FromEnv applies SNOWSCAPE_* overrides; unparsable values are reported, the rest still apply
func FromEnv(cfg *Config) error {
	return fromEnv(cfg, os.LookupEnv)
}

func fromEnv(cfg *Config, lookup func(string) (string, bool)) error {
	var errs []error

	parse := func(key string, apply func(string) error) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		if err := apply(v); err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", key, v, err))
		}
	}

	parse("SNOWSCAPE_SEED", func(v string) (err error) {
		cfg.Seed, err = strconv.ParseInt(v, 10, 64)
		return
	})
	parse("SNOWSCAPE_DENSITY", floatInto(&cfg.Density))
	parse("SNOWSCAPE_FREQUENCY", floatInto(&cfg.Frequency))
	parse("SNOWSCAPE_AMPLITUDE", floatInto(&cfg.Amplitude))
	parse("SNOWSCAPE_TERRAIN_RATIO", floatInto(&cfg.TerrainRatio))
	parse("SNOWSCAPE_INTERVAL", func(v string) (err error) {
		cfg.Interval, err = time.ParseDuration(v)
		return
	})
	parse("SNOWSCAPE_FPS", func(v string) (err error) {
		cfg.FPS, err = strconv.Atoi(v)
		return
	})
	parse("SNOWSCAPE_AUDIO", func(v string) (err error) {
		cfg.Audio, err = strconv.ParseBool(v)
		return
	})
	parse("SNOWSCAPE_LOG_FILE", func(v string) error {
		cfg.LogFile = v
		return nil
	})

	return errors.Join(errs...)
}

func floatInto(dst *float64) func(string) error {
	return func(v string) (err error) {
		*dst, err = strconv.ParseFloat(v, 64)
		return
	}
}

// BindFlags registers command line flags writing into cfg; current values become defaults
func BindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "landscape seed, 0 for random")
	fs.Float64Var(&cfg.Density, "density", cfg.Density, "snowflake spawn probability per column (0-1)")
	fs.Float64Var(&cfg.Frequency, "frequency", cfg.Frequency, "hill noise frequency (>0)")
	fs.Float64Var(&cfg.Amplitude, "amplitude", cfg.Amplitude, "hill amplitude (0-1)")
	fs.Float64Var(&cfg.TerrainRatio, "terrain", cfg.TerrainRatio, "share of screen height used by terrain (0-1]")
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "snow update interval")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second (1-60)")
	fs.BoolVar(&cfg.Audio, "audio", cfg.Audio, "enable sound cues")
	fs.BoolVar(&cfg.ShowStatus, "status", cfg.ShowStatus, "show status line")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file path, empty to discard")
	fs.BoolVar(&cfg.Once, "once", cfg.Once, "render frames headless and print the last one")
	fs.IntVar(&cfg.Frames, "frames", cfg.Frames, "snow updates before a headless dump")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "headless frame width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "headless frame height")
}

// Validate checks ranges, returning every violation wrapped in ErrInvalid
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Density >= 0 && c.Density <= 1, "density %v not in [0, 1]", c.Density)
	check(c.Frequency > 0, "frequency %v must be positive", c.Frequency)
	check(c.Amplitude >= 0 && c.Amplitude <= 1, "amplitude %v not in [0, 1]", c.Amplitude)
	check(c.TerrainRatio > 0 && c.TerrainRatio <= 1, "terrain ratio %v not in (0, 1]", c.TerrainRatio)
	check(c.Interval > 0, "interval %v must be positive", c.Interval)
	check(c.FPS >= 1 && c.FPS <= 60, "fps %d not in [1, 60]", c.FPS)
	check(c.Frames >= 0, "frames %d must not be negative", c.Frames)
	check(c.Width > 0 && c.Height > 0, "headless size %dx%d must be positive", c.Width, c.Height)

	return errors.Join(errs...)
}

// FrameInterval returns the render tick derived from FPS
func (c Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return parameter.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.FPS)
}
