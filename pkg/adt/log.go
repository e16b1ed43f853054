package adt

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var logger atomic.Pointer[logrus.Logger]

func init() {
	logger.Store(defaultLogger())
}

func defaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// Logger returns the logger used for captured failures.
func Logger() *logrus.Logger {
	return logger.Load()
}

// SetLogger replaces the package logger. A nil logger restores the default,
// which writes to stderr at warn level.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = defaultLogger()
	}
	logger.Store(l)
}
