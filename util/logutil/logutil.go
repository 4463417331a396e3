package logutil

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const timeFormat = "2006-01-02 15:04:05"

func New(w io.Writer) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: timeFormat,
		NoColor:    true,
	}
	return zerolog.New(cw).
		Level(zerolog.InfoLevel).
		With().Timestamp().Int("pid", os.Getpid()).
		Logger()
}

func Stderr() zerolog.Logger {
	return New(os.Stderr)
}

// For tests and components built without a logger.
func Discard() zerolog.Logger {
	return zerolog.Nop()
}
