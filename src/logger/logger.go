// Package logger provides a thin wrapper around zerolog.Logger used
// throughout the portfolio backend. The Logger type embeds zerolog.Logger so
// the full zerolog API (Debug, Info, Warn, Error, Fatal, ...) is available
// directly.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New constructs a JSON logger writing to stdout, tagged with a role label
// (e.g. "server") and a timestamp on every entry. The level is read from
// LOG_LEVEL and defaults to info.
func New(role string) *Logger {
	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	l := zerolog.New(os.Stdout).Level(level).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{l}
}
