// Package config loads settings from mpctl.toml, MPCTL_* environment
// variables and the registered defaults.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/mpctl/mpctl/constant"
	"github.com/mpctl/mpctl/filesystem"
	"github.com/mpctl/mpctl/key"
	"github.com/mpctl/mpctl/player"
	"github.com/mpctl/mpctl/version"
	"github.com/mpctl/mpctl/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and environment bindings and reads the config
// file when there is one.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

// Player builds the engine configuration from the player.* and version.* keys.
func Player() player.Config {
	millis := func(k string) time.Duration {
		return time.Duration(viper.GetInt(k)) * time.Millisecond
	}

	cfg := player.DefaultConfig()
	cfg.BinaryPath = viper.GetString(key.PlayerBinary)
	cfg.AudioOutput = viper.GetString(key.PlayerAudioOutput)
	cfg.VideoOutput = viper.GetString(key.PlayerVideoOutput)
	cfg.ExtraArgs = viper.GetStringSlice(key.PlayerExtraArgs)
	cfg.StartTimeout = millis(key.PlayerStartTimeout)
	cfg.StopTimeout = millis(key.PlayerStopTimeout)
	cfg.LoadTimeout = millis(key.PlayerLoadTimeout)
	cfg.ParameterDelay = millis(key.PlayerParameterDelay)
	cfg.ErrorWindow = millis(key.PlayerErrorWindow)
	cfg.FinishDelay = millis(key.PlayerFinishDelay)
	cfg.Versions = version.NewProber(version.Options{
		CachePath: where.VersionCache(),
		Lifetime:  time.Duration(viper.GetInt(key.VersionCacheHours)) * time.Hour,
	})
	return cfg
}
