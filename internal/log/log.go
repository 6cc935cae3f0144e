// Package log sets up the diagnostic logger. Diagnostics go to stderr and are
// kept apart from the report on stdout.
package log

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w at the named level. Unknown
// level names fall back to warn.
func New(w io.Writer, level string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	console := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	return zerolog.New(console).Level(lvl).With().Timestamp().Logger()
}

// WithContext attaches a logger built by New to ctx.
func WithContext(ctx context.Context, w io.Writer, level string) context.Context {
	logger := New(w, level)
	return logger.WithContext(ctx)
}
