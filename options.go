package corroadmin

import (
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/joeblew999/corrosion/internal/config"
	"github.com/joeblew999/corrosion/internal/render"
)

// Options holds the resolved settings of a connection.
type Options = config.Options

// Renderer writes one Data payload to the output writer.
type Renderer = config.Renderer

// Option configures Options using the functional options pattern.
type Option func(*Options)

// applyOptions applies functional options to an Options struct.
func applyOptions(opts []Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for client diagnostics.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithEventLogger sets the logger that receives the node's Log responses.
// If not set, the WithLogger logger is used.
func WithEventLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.EventLogger = logger
	}
}

// WithOutput sets where Data responses are written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// WithRenderer sets how Data responses are formatted.
// Defaults to RenderJSON.
func WithRenderer(r Renderer) Option {
	return func(o *Options) {
		o.Renderer = r
	}
}

// WithTransport injects an already-open transport. The endpoint passed to
// Connect is then ignored.
func WithTransport(t Transport) Option {
	return func(o *Options) {
		o.Transport = t
	}
}

// WithDialTimeout bounds how long opening the endpoint may take.
// Defaults to 5 seconds.
func WithDialTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.DialTimeout = d
	}
}

// RenderJSON writes a payload as JSON indented by two spaces.
func RenderJSON(w io.Writer, value json.RawMessage) error {
	return render.JSON(w, value)
}

// RenderTable writes arrays of objects and objects as tables,
// falling back to RenderJSON for other shapes.
func RenderTable(w io.Writer, value json.RawMessage) error {
	return render.Table(w, value)
}
