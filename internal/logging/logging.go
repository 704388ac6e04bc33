// Package logging provides the shared structured logger for MoldQuote.
package logging

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	once      sync.Once
	singleton *log.Logger
)

// Logger returns the process-wide logger, creating it on first use.
func Logger() *log.Logger {
	once.Do(func() {
		singleton = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "moldquote",
		})
		singleton.SetLevel(log.InfoLevel)
	})
	return singleton
}

// SetDebug raises the log level to debug.
func SetDebug() {
	Logger().SetLevel(log.DebugLevel)
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, keyvals ...interface{}) {
	Logger().Debug(msg, keyvals...)
}

// Info logs an informational message with optional key-value pairs.
func Info(msg string, keyvals ...interface{}) {
	Logger().Info(msg, keyvals...)
}

// Warn logs a warning with optional key-value pairs.
func Warn(msg string, keyvals ...interface{}) {
	Logger().Warn(msg, keyvals...)
}

// Error logs an error with optional key-value pairs.
func Error(msg string, keyvals ...interface{}) {
	Logger().Error(msg, keyvals...)
}
