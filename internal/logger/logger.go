// Package logger configures the process-wide diagnostic logger.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New creates a console logger on w. Verbose drops the level to Debug,
// which makes the API client log every request it issues.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
