// Package log is the logger shared by the categories packages. It is a
// thin layer over https://github.com/sirupsen/logrus. The default level
// is warn, so nothing is printed unless a caller asks for it.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	return l
}

// Init toggles whether to print debug messages. quiet silences
// everything below a warning and takes precedence over dbg.
func Init(dbg bool, qt bool) {
	switch {
	case qt:
		logger.SetLevel(logrus.WarnLevel)
	case dbg:
		logger.SetLevel(logrus.DebugLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
}

// Logger returns the underlying logrus logger.
func Logger() *logrus.Logger {
	return logger
}

// SetLevel sets the logger's level.
func SetLevel(level logrus.Level) {
	logger.SetLevel(level)
}

// SetOutput sets the logger's output.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetFormatter sets the logger's formatter.
func SetFormatter(f logrus.Formatter) {
	logger.SetFormatter(f)
}

// IsDebug returns true if debug messages are printed.
func IsDebug() bool {
	return logger.IsLevelEnabled(logrus.DebugLevel)
}

// WithFields returns an entry carrying fields.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

// Warnf always prints the message.
func Warnf(format string, v ...interface{}) {
	logger.Warnf(format, v...)
}

// Printf prints the message unless Init was called with quiet set.
func Printf(format string, v ...interface{}) {
	logger.Infof(format, v...)
}

// Debugf prints the message only if debug logging is enabled.
func Debugf(format string, v ...interface{}) {
	logger.Debugf(format, v...)
}
