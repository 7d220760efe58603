// Package log is the application-wide logging facade. Messages are dropped
// unless logs.write is set, in which case they go to a daily file under
// where.Logs().
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mpctl/mpctl/filesystem"
	"github.com/mpctl/mpctl/key"
	"github.com/mpctl/mpctl/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	enabled bool
	logger  = logrus.New()
)

// Setup configures logging from the logs.* keys.
func Setup() error {
	if !viper.GetBool(key.LogsWrite) {
		enabled = false
		return nil
	}

	path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
	f, err := filesystem.API().OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	lvl, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		lvl = logrus.InfoLevel
	}

	Use(f, lvl, viper.GetBool(key.LogsJson))
	return nil
}

// Use sends log output to w and enables logging.
func Use(w io.Writer, level logrus.Level, json bool) {
	logger.SetOutput(w)
	logger.SetLevel(level)
	if json {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	enabled = true
}

// Disable drops every following message.
func Disable() {
	enabled = false
}

func Error(args ...interface{}) {
	if enabled {
		logger.Error(args...)
	}
}
func Errorf(format string, args ...interface{}) {
	if enabled {
		logger.Errorf(format, args...)
	}
}
func Warn(args ...interface{}) {
	if enabled {
		logger.Warn(args...)
	}
}
func Warnf(format string, args ...interface{}) {
	if enabled {
		logger.Warnf(format, args...)
	}
}
func Info(args ...interface{}) {
	if enabled {
		logger.Info(args...)
	}
}
func Infof(format string, args ...interface{}) {
	if enabled {
		logger.Infof(format, args...)
	}
}
func Debugf(format string, args ...interface{}) {
	if enabled {
		logger.Debugf(format, args...)
	}
}
