// Package log writes diagnostics through logrus into a daily file under where.Logs().
//
// Logs are opt-in (logs.write) because stdout carries the resolved URLs and stderr the user-facing errors.
// While disabled every call goes to a discarding logger.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bililink-cli/bililink/filesystem"
	"github.com/bililink-cli/bililink/key"
	"github.com/bililink-cli/bililink/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}()

var active = discard

// Setup opens today's log file and applies the configured format and level.
// It does nothing when logs.write is off.
func Setup() error {
	if !viper.GetBool(key.LogsWrite) {
		active = discard
		return nil
	}

	path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")

	f, err := filesystem.API().OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	l := logrus.StandardLogger()
	l.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	active = l
	return nil
}

func Error(args ...any)                 { active.Error(args...) }
func Errorf(format string, args ...any) { active.Errorf(format, args...) }
func Warn(args ...any)                  { active.Warn(args...) }
func Warnf(format string, args ...any)  { active.Warnf(format, args...) }
func Info(args ...any)                  { active.Info(args...) }
func Infof(format string, args ...any)  { active.Infof(format, args...) }
func Debug(args ...any)                 { active.Debug(args...) }
func Debugf(format string, args ...any) { active.Debugf(format, args...) }

// WithField returns an entry carrying key=value.
func WithField(key string, value any) *logrus.Entry {
	return active.WithField(key, value)
}

// Resty adapts the logger to the resty.Logger interface.
func Resty() restyLogger {
	return restyLogger{}
}

type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...any) { Errorf(format, v...) }
func (restyLogger) Warnf(format string, v ...any)  { Warnf(format, v...) }
func (restyLogger) Debugf(format string, v ...any) { Debugf(format, v...) }
