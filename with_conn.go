package corroadmin

import (
	"context"
	"fmt"
)

// WithConn manages connection lifecycle with automatic cleanup.
//
// This helper connects to ep, executes the callback function, and ensures
// the connection is closed when done.
//
// If the callback returns an error, it is returned to the caller.
// If Close() fails, a warning is logged but does not override the callback's error.
//
// Example usage:
//
//	err := corroadmin.WithConn(ctx, corroadmin.DefaultEndpoint(), func(c corroadmin.Conn) error {
//	    if err := c.SendCommand(ctx, corroadmin.ClusterMembers{}); err != nil {
//	        return err
//	    }
//	    return c.SendCommand(ctx, corroadmin.SubsList{})
//	},
//	    corroadmin.WithLogger(log),
//	)
func WithConn(ctx context.Context, ep Endpoint, fn func(Conn) error, opts ...Option) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	options := applyOptions(opts)

	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	conn, err := newConnImpl(ctx, ep, options)
	if err != nil {
		return fmt.Errorf("connect to admin endpoint: %w", err)
	}

	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			log.Warn("Failed to close admin connection", "error", closeErr)
		}
	}()

	return fn(conn)
}
