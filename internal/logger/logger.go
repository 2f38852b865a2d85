// Package logger is the structured logger shared by the CLI, the lookup
// controller and the profile client.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Field names attached to every lookup entry.
const (
	FieldUsername      = "username"
	FieldCorrelationID = "correlation_id"
	FieldSeq           = "seq"
)

// consoleTimeFormat is used when entries are rendered for a human.
const consoleTimeFormat = "15:04:05"

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	// Writer defaults to os.Stderr.
	Writer io.Writer
}

// Logger wraps zerolog. A nil *Logger discards everything, so callers never
// need to guard optional loggers.
type Logger struct {
	zl zerolog.Logger
}

// New creates a Logger from opts. Unknown levels are rejected.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	zl := zerolog.New(sink(opts)).Level(level).With().Timestamp().Logger()
	return &Logger{zl: zl}, nil
}

func parseLevel(raw string) (zerolog.Level, error) {
	if strings.TrimSpace(raw) == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level: %w", err)
	}
	return level, nil
}

func sink(opts Options) io.Writer {
	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if !opts.HumanReadable {
		return out
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: consoleTimeFormat}
}

// Nop returns a logger that discards everything. Used while the TUI owns the
// terminal and no log file was requested.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.zl.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}
	return &Logger{zl: ctx.Logger()}
}

// WithRequest scopes the logger to one profile lookup.
func (l *Logger) WithRequest(username, correlationID string, seq uint64) *Logger {
	if l == nil {
		return nil
	}
	zl := l.zl.With().
		Str(FieldUsername, username).
		Str(FieldCorrelationID, correlationID).
		Uint64(FieldSeq, seq).
		Logger()
	return &Logger{zl: zl}
}

// Debug writes a debug-level entry.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.zl.Debug().Msg(msg)
}

// Info writes an info-level entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.zl.Info().Msg(msg)
}

// Warn writes a warning, attaching err when present.
func (l *Logger) Warn(err error, msg string) {
	if l == nil {
		return
	}
	withErr(l.zl.Warn(), err).Msg(msg)
}

// Error writes an error entry, attaching err when present.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	withErr(l.zl.Error(), err).Msg(msg)
}

func withErr(event *zerolog.Event, err error) *zerolog.Event {
	if err == nil {
		return event
	}
	return event.Err(err)
}
