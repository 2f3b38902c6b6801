// Package logging holds the shared structured logger. Output stays at warn
// level unless debug tracing is enabled, so normal CLI output is not mixed
// with log lines.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		FullTimestamp:   true,
	})
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetDebug toggles debug-level pipeline tracing.
func SetDebug(enabled bool) {
	if enabled {
		Log.SetLevel(logrus.DebugLevel)
	} else {
		Log.SetLevel(logrus.WarnLevel)
	}
}

// WithFields is a convenience wrapper over the shared logger.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return Log.WithFields(fields)
}
