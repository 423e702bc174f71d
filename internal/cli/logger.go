package cli

import (
	"io"
	"log/slog"

	corroadmin "github.com/joeblew999/corrosion"
)

// NewLogger returns a text logger on w filtering below levelName.
// Trace records print as TRACE rather than DEBUG-4.
func NewLogger(w io.Writer, levelName string) (*slog.Logger, error) {
	level, err := corroadmin.ParseLogLevel(levelName)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level.SlogLevel(),
		ReplaceAttr: replaceLevel,
	})

	return slog.New(handler), nil
}

func replaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}

	if level, ok := a.Value.Any().(slog.Level); ok && level == corroadmin.LevelTrace {
		a.Value = slog.StringValue("TRACE")
	}

	return a
}
