// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/mpctl/mpctl/constant"
	"github.com/mpctl/mpctl/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "MPCTL_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory. MPCTL_CONFIG_PATH overrides
// the platform default.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the cache directory, falling back to ./cache when the
// platform provides none.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the directory log files are written to.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// ConfigFile is the path of the configuration file, whether or not it exists.
func ConfigFile() string {
	return filepath.Join(Config(), constant.App+".toml")
}

// VersionCache is the file probed player versions are cached in.
func VersionCache() string {
	return filepath.Join(Cache(), "versions.json")
}

// History is the file recently played media are remembered in.
func History() string {
	return filepath.Join(Config(), "history.json")
}
