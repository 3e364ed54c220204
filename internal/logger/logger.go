// Package logger provides logging for auto-merge using the bullets library.
//
// It wraps [bullets.Logger] with a level-parsing constructor and a silent
// logger for tests. The config and resolve packages never log; logging is an
// orchestration concern.
package logger

import (
	"os"

	"github.com/sgaunet/bullets"
)

// Logger is the logging interface used throughout auto-merge.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NewLogger creates a logger that writes to stdout at the specified level.
// Unknown level strings fall back to "info".
func NewLogger(logLevel string) *bullets.Logger {
	var level bullets.Level
	switch logLevel {
	case "debug":
		level = bullets.DebugLevel
	case "info":
		level = bullets.InfoLevel
	case "warn":
		level = bullets.WarnLevel
	case "error":
		level = bullets.ErrorLevel
	default:
		level = bullets.InfoLevel
	}
	logger := bullets.New(os.Stdout)
	logger.SetLevel(level)
	return logger
}

// NoLogger creates a logger that suppresses all output by setting the level
// to Fatal. Useful for tests.
func NoLogger() *bullets.Logger {
	logger := bullets.New(os.Stdout)
	logger.SetLevel(bullets.FatalLevel)
	return logger
}
