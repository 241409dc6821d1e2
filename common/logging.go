/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package common

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the interface used for logging in the colrfont packages.
type Logger interface {
	Error(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Notice(format string, args ...interface{})
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Trace(format string, args ...interface{})
	IsLogLevel(level LogLevel) bool
}

// DummyLogger does nothing.
type DummyLogger struct{}

func (DummyLogger) Error(format string, args ...interface{})   {}
func (DummyLogger) Warning(format string, args ...interface{}) {}
func (DummyLogger) Notice(format string, args ...interface{})  {}
func (DummyLogger) Info(format string, args ...interface{})    {}
func (DummyLogger) Debug(format string, args ...interface{})   {}
func (DummyLogger) Trace(format string, args ...interface{})   {}

// IsLogLevel always returns true for the DummyLogger.
func (DummyLogger) IsLogLevel(level LogLevel) bool {
	return true
}

// LogLevel is the verbosity level for logging.
type LogLevel int

// Defines log level enum where the most important logs have the lowest values.
// I.e. level error = 0 and level trace = 5
const (
	LogLevelTrace   LogLevel = 5
	LogLevelDebug   LogLevel = 4
	LogLevelInfo    LogLevel = 3
	LogLevelNotice  LogLevel = 2
	LogLevelWarning LogLevel = 1
	LogLevelError   LogLevel = 0
)

// logrusLevel maps `level` onto the closest logrus level. logrus has no notice level, so notices
// are logged as info.
func (level LogLevel) logrusLevel() logrus.Level {
	switch {
	case level >= LogLevelTrace:
		return logrus.TraceLevel
	case level == LogLevelDebug:
		return logrus.DebugLevel
	case level == LogLevelInfo, level == LogLevelNotice:
		return logrus.InfoLevel
	case level == LogLevelWarning:
		return logrus.WarnLevel
	}
	return logrus.ErrorLevel
}

// ConsoleLogger is a logger that writes logs to stderr through logrus.
type ConsoleLogger struct {
	LogLevel LogLevel
	entry    *logrus.Logger
}

// NewConsoleLogger creates a new console logger writing to stderr.
func NewConsoleLogger(logLevel LogLevel) *ConsoleLogger {
	return NewWriterLogger(logLevel, os.Stderr)
}

// NewWriterLogger creates a new logger writing to `w`.
func NewWriterLogger(logLevel LogLevel, w io.Writer) *ConsoleLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logLevel.logrusLevel())
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableQuote:     true,
	})
	return &ConsoleLogger{LogLevel: logLevel, entry: l}
}

// IsLogLevel returns true if log level is greater or equal than `level`.
// Can be used to avoid resource intensive calls to loggers.
func (l ConsoleLogger) IsLogLevel(level LogLevel) bool {
	return l.LogLevel >= level
}

// Error logs error message.
func (l ConsoleLogger) Error(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelError {
		l.entry.Error(fmt.Sprintf(format, args...))
	}
}

// Warning logs warning message.
func (l ConsoleLogger) Warning(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelWarning {
		l.entry.Warn(fmt.Sprintf(format, args...))
	}
}

// Notice logs notice message, at logrus info level.
func (l ConsoleLogger) Notice(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelNotice {
		l.entry.Info(fmt.Sprintf(format, args...))
	}
}

// Info logs info message.
func (l ConsoleLogger) Info(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelInfo {
		l.entry.Info(fmt.Sprintf(format, args...))
	}
}

// Debug logs debug message.
func (l ConsoleLogger) Debug(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelDebug {
		l.entry.Debug(fmt.Sprintf(format, args...))
	}
}

// Trace logs trace message.
func (l ConsoleLogger) Trace(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelTrace {
		l.entry.Trace(fmt.Sprintf(format, args...))
	}
}

// Log is the package wide logger. Silent until SetLogger is called.
var Log Logger = DummyLogger{}

// SetLogger sets `logger` to be used as the package wide logger.
func SetLogger(logger Logger) {
	Log = logger
}
