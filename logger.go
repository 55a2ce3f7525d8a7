package litegrep

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// logger carries internal diagnostics. It stays disabled unless GREP_LOG
// names a zerolog level, so the stdout/stderr contract of the tool is never
// polluted by default.
var logger = newLogger()

func newLogger() zerolog.Logger {
	name := os.Getenv("GREP_LOG")
	if name == "" {
		return zerolog.New(io.Discard)
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
