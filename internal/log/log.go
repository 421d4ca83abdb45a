// Package log is a small leveled logger for the imgprobe command.
// Everything goes to stderr so that stdout only carries results.
package log

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level  = new(slog.LevelVar)
	mu     sync.Mutex
	logger = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetOutput redirects log output to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w)
}

func current() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) { level.Set(l) }

// GetLevel returns the current log level.
func GetLevel() slog.Level { return level.Level() }

// Debug logs msg with key/value pairs at debug level.
func Debug(msg string, args ...any) { current().Debug(msg, args...) }

// Info logs msg with key/value pairs at info level.
func Info(msg string, args ...any) { current().Info(msg, args...) }

// Warn logs msg with key/value pairs at warn level.
func Warn(msg string, args ...any) { current().Warn(msg, args...) }

// Error logs msg with key/value pairs at error level.
func Error(msg string, args ...any) { current().Error(msg, args...) }
