// Package log wraps logrus behind the tiny surface the rest of the
// codebase uses.
package log

import "github.com/sirupsen/logrus"

type Level = logrus.Level

const (
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
)

var logger = logrus.New()

func init() {
	logger.Formatter = &logrus.TextFormatter{
		DisableLevelTruncation: true,
		PadLevelText:           true,
		FullTimestamp:          true,
		TimestampFormat:        "2006/01/02 15:04:05",
	}
}

// SetLevel raises or lowers the global threshold.
func SetLevel(level Level) {
	logger.SetLevel(level)
}

// Log writes at an arbitrary level; used by the httpx helpers.
func Log(level Level, args ...any) {
	logger.Logln(level, args...)
}

func Logf(level Level, format string, args ...any) {
	logger.Logf(level, format, args...)
}

func Debug(args ...any)                 { logger.Debugln(args...) }
func Debugf(format string, args ...any) { logger.Debugf(format, args...) }

func Info(args ...any)                 { logger.Infoln(args...) }
func Infof(format string, args ...any) { logger.Infof(format, args...) }

func Warn(args ...any)                 { logger.Warnln(args...) }
func Warnf(format string, args ...any) { logger.Warnf(format, args...) }

func Error(args ...any)                 { logger.Errorln(args...) }
func Errorf(format string, args ...any) { logger.Errorf(format, args...) }

func Fatal(args ...any)                 { logger.Fatalln(args...) }
func Fatalf(format string, args ...any) { logger.Fatalf(format, args...) }
