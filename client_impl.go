package corroadmin

import (
	"context"

	"github.com/joeblew999/corrosion/internal/client"
)

// connWrapper wraps the internal client to adapt it to the public interface.
type connWrapper struct {
	impl *client.Client
}

// Compile-time check that *connWrapper implements the Conn interface.
var _ Conn = (*connWrapper)(nil)

// newConnImpl creates the internal client implementation.
func newConnImpl(ctx context.Context, ep Endpoint, options *Options) (Conn, error) {
	impl, err := client.Connect(ctx, ep, options)
	if err != nil {
		return nil, err
	}

	return &connWrapper{impl: impl}, nil
}

// SendCommand submits a command and waits for its terminal response.
func (c *connWrapper) SendCommand(ctx context.Context, cmd Command) error {
	return c.impl.SendCommand(ctx, cmd)
}

// Close closes the connection.
func (c *connWrapper) Close() error {
	return c.impl.Close()
}
