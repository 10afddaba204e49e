// Package logger builds the slog logger used for diagnostics on stderr.
package logger

import (
	"io"
	"log/slog"
	"time"
)

// Config controls logger construction.
type Config struct {
	// Debug enables debug-level records. Without it the logger discards everything.
	Debug bool
}

// New returns a text logger writing to w.
func New(w io.Writer, cfg Config) *slog.Logger {
	if !cfg.Debug {
		return Discard()
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})
	return slog.New(h)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
