package player

import (
	"context"
	"time"

	"github.com/mpctl/mpctl/version"
)

// VersionProber reports the version of a player binary.
type VersionProber interface {
	Query(ctx context.Context, binary string) (string, error)
}

// Config configures a Player. Zero fields take the values of DefaultConfig.
type Config struct {
	// BinaryPath is the player executable, looked up in PATH when relative.
	BinaryPath string

	// AudioOutput is passed with -ao when not empty.
	AudioOutput string

	// VideoOutput is passed with -vo when embedding into a window.
	VideoOutput string

	// ExtraArgs follow the baseline arguments on every start.
	ExtraArgs []string

	StartTimeout   time.Duration
	StopTimeout    time.Duration
	LoadTimeout    time.Duration
	ParameterDelay time.Duration
	ErrorWindow    time.Duration
	FinishDelay    time.Duration

	// EndThreshold is how close to the end, in seconds, a position must be
	// to count as the end of the media.
	EndThreshold float64

	// StallLimit is the number of identical positions after which a
	// playing player is nudged.
	StallLimit int

	Versions VersionProber
}

// DefaultConfig returns the configuration used for unset fields.
func DefaultConfig() Config {
	return Config{
		BinaryPath:     "mplayer",
		AudioOutput:    DefaultAudioOutput(),
		VideoOutput:    DefaultVideoOutput(),
		StartTimeout:   5 * time.Second,
		StopTimeout:    3 * time.Second,
		LoadTimeout:    10 * time.Second,
		ParameterDelay: 50 * time.Millisecond,
		ErrorWindow:    100 * time.Millisecond,
		FinishDelay:    500 * time.Millisecond,
		EndThreshold:   0.5,
		StallLimit:     5,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()

	if c.BinaryPath == "" {
		c.BinaryPath = d.BinaryPath
	}
	if c.StartTimeout <= 0 {
		c.StartTimeout = d.StartTimeout
	}
	if c.StopTimeout <= 0 {
		c.StopTimeout = d.StopTimeout
	}
	if c.LoadTimeout <= 0 {
		c.LoadTimeout = d.LoadTimeout
	}
	if c.ParameterDelay <= 0 {
		c.ParameterDelay = d.ParameterDelay
	}
	if c.ErrorWindow <= 0 {
		c.ErrorWindow = d.ErrorWindow
	}
	if c.FinishDelay <= 0 {
		c.FinishDelay = d.FinishDelay
	}
	if c.EndThreshold <= 0 {
		c.EndThreshold = d.EndThreshold
	}
	if c.StallLimit <= 0 {
		c.StallLimit = d.StallLimit
	}
	if c.Versions == nil {
		c.Versions = version.NewProber(version.Options{})
	}

	return c
}
