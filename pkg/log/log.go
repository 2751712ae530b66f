// Package log provides the logging interface used throughout the core.
package log

import (
	"github.com/sirupsen/logrus"
)

// Logger is satisfied by *logrus.Logger as well as the null logger, so
// a host can pass in whatever it already uses.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a logrus logger writing plain text at debug level.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// NewWithLevel is like New, but only messages at or above level are
// emitted.
func NewWithLevel(level logrus.Level) Logger {
	l := New().(*logrus.Logger)
	l.SetLevel(level)
	return l
}
