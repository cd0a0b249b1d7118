package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns the process logger. Development mode uses the
// human-friendly console writer.
func NewLogger(env string) zerolog.Logger {
	if env == "development" || env == "dev" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
