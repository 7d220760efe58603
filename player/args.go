package player

import (
	"runtime"
	"strconv"

	"github.com/mpctl/mpctl/constant"
)

// StartOptions are per-start arguments.
type StartOptions struct {
	// WindowID embeds the video into a host window when not zero.
	WindowID int64

	// Args are appended after the configured extra arguments.
	Args []string
}

// DefaultAudioOutput returns the -ao value used on this platform.
func DefaultAudioOutput() string {
	if runtime.GOOS == constant.Linux {
		return "alsa,"
	}
	return ""
}

// DefaultVideoOutput returns the -vo value used when embedding on this
// platform. It is empty where embedding is not supported.
func DefaultVideoOutput() string {
	switch runtime.GOOS {
	case constant.Windows:
		return "directx,directx:noaccel"
	case constant.Linux:
		return "xv:ck=set,"
	default:
		return ""
	}
}

type videoDefaults struct {
	brightness, contrast, hue, saturation float64
}

func buildArgs(cfg Config, video videoDefaults, opts StartOptions) []string {
	number := func(v float64) string {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	args := []string{
		"-zoom",
		"-noautosub",
		"-slave",
		"-colorkey", "0x020202",
	}

	if cfg.AudioOutput != "" {
		args = append(args, "-ao", cfg.AudioOutput)
	}

	args = append(args,
		"-osdlevel", "0",
		"-contrast", number(video.contrast),
		"-brightness", number(video.brightness),
		"-hue", number(video.hue),
		"-saturation", number(video.saturation),
		"-framedrop",
		"-fontconfig",
		"-font", "Sans",
		"-subfont-autoscale", "3",
		"-subfont-text-scale", "3",
		"-double",
		"-noquiet",
		"-msglevel", "identify=4",
		"-idle",
		"-af", "volnorm",
		"-input", "nodefault-bindings",
		"-noconfig", "all",
	)

	args = append(args, cfg.ExtraArgs...)
	args = append(args, opts.Args...)

	if opts.WindowID != 0 && cfg.VideoOutput != "" {
		args = append(args, "-wid", strconv.FormatInt(opts.WindowID, 10), "-vo", cfg.VideoOutput)
	}

	return args
}
