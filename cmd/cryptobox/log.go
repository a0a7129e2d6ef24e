package main

import (
	"io"

	"github.com/rs/zerolog"
)

// newLogger returns a JSON logger writing to w. Debug events are only written when verbose is set.
// Secrets, keys, and plaintexts are never logged, only their sizes.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(w).Level(level).With().
		Timestamp().
		Str("service", "cryptobox").
		Logger()
}
