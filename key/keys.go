// Package key names every configuration key.
package key

// Player engine settings.
const (
	PlayerBinary         = "player.binary"
	PlayerAudioOutput    = "player.audio_output"
	PlayerVideoOutput    = "player.video_output"
	PlayerExtraArgs      = "player.extra_args"
	PlayerStartTimeout   = "player.start_timeout"
	PlayerStopTimeout    = "player.stop_timeout"
	PlayerLoadTimeout    = "player.load_timeout"
	PlayerParameterDelay = "player.parameter_delay"
	PlayerErrorWindow    = "player.error_window"
	PlayerFinishDelay    = "player.finish_delay"
	PlayerSeekStep       = "player.seek_step"
	PlayerVolumeStep     = "player.volume_step"
)

const (
	VersionCacheHours = "version.cache_hours"
)

// Recently played media.
const (
	HistorySave  = "history.save"
	HistoryLimit = "history.limit"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

const (
	CliColored   = "cli.colored"
	IconsVariant = "icons.variant"
)
