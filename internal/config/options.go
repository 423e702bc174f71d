package config

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"time"
)

// DefaultDialTimeout bounds how long opening the admin endpoint may take.
const DefaultDialTimeout = 5 * time.Second

// Renderer writes one Data payload to the primary output.
type Renderer func(w io.Writer, value json.RawMessage) error

// Options configures the behavior of the admin client.
type Options struct {
	// Logger is the slog logger for client diagnostics.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// EventLogger receives the Log responses forwarded by the endpoint.
	// If nil, Logger is used.
	EventLogger *slog.Logger

	// Output is where Data responses are rendered.
	// If nil, os.Stdout is used.
	Output io.Writer

	// Renderer formats Data responses onto Output.
	// If nil, the payload is written as indented JSON.
	Renderer Renderer

	// Transport allows injecting a custom transport implementation.
	// If set, no endpoint is dialed and the transport is used as is.
	Transport Transport

	// DialTimeout bounds the dial of the endpoint. Zero means DefaultDialTimeout.
	// It has no effect on command execution; use a context deadline for that.
	DialTimeout time.Duration
}

// Resolved returns a copy of o with every unset field replaced by its default.
// The renderer default is left to the caller so this package stays free of
// output formatting.
func (o *Options) Resolved() *Options {
	resolved := &Options{}
	if o != nil {
		*resolved = *o
	}

	if resolved.Logger == nil {
		resolved.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if resolved.EventLogger == nil {
		resolved.EventLogger = resolved.Logger
	}

	if resolved.Output == nil {
		resolved.Output = os.Stdout
	}

	if resolved.DialTimeout <= 0 {
		resolved.DialTimeout = DefaultDialTimeout
	}

	return resolved
}
