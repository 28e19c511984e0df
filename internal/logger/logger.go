package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type implLogger struct {
	mu     sync.RWMutex
	logger zerolog.Logger
	level  zerolog.Level
}

// New creates a console logger on stdout at the given level.
func New(level string) Logger {
	return NewWithWriter(level, "text", os.Stdout)
}

// NewWithWriter creates a logger writing to w. format "json" emits raw
// zerolog JSON lines, anything else a human readable console format.
func NewWithWriter(level, format string, w io.Writer) Logger {
	out := w
	if strings.ToLower(format) != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return &implLogger{
		logger: zerolog.New(out).With().Timestamp().Logger(),
		level:  parseLevel(level),
	}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *implLogger) SetLevel(level string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = parseLevel(level)
}

func (l *implLogger) shouldLog(level zerolog.Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level >= l.level
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog(zerolog.DebugLevel) {
		l.logger.Debug().Msgf(msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog(zerolog.InfoLevel) {
		l.logger.Info().Msgf(msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog(zerolog.WarnLevel) {
		l.logger.Warn().Msgf(msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog(zerolog.ErrorLevel) {
		l.logger.Error().Msgf(msg, args...)
	}
}

// Nop returns a logger that discards everything, for tests.
func Nop() Logger {
	return NewWithWriter("error", "json", io.Discard)
}
