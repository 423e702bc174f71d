package corroadmin

import (
	"io"
	"log/slog"

	"github.com/joeblew999/corrosion/internal/message"
)

// LevelTrace is the slog level of trace records forwarded from the node.
const LevelTrace = message.LevelTrace

// NopLogger returns a logger that discards all output.
// Use this when you want silent operation with no logging overhead.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
