package corroadmin

import "context"

// Send connects to ep, runs one command and closes the connection.
//
// Example usage:
//
//	err := corroadmin.Send(ctx, corroadmin.DefaultEndpoint(), corroadmin.Locks{Top: 10},
//	    corroadmin.WithRenderer(corroadmin.RenderTable),
//	)
func Send(ctx context.Context, ep Endpoint, cmd Command, opts ...Option) error {
	return WithConn(ctx, ep, func(c Conn) error {
		return c.SendCommand(ctx, cmd)
	}, opts...)
}
