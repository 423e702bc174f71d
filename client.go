package corroadmin

import "context"

// Conn is a connection to one admin endpoint.
//
// Lifecycle: a Conn may run any number of commands in sequence. After a
// transport or protocol failure, or after the context of a SendCommand is
// cancelled, it is broken and every later call returns ErrConnBroken.
//
// Example usage:
//
//	conn, err := corroadmin.Connect(ctx, corroadmin.DefaultEndpoint(),
//	    corroadmin.WithLogger(slog.Default()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.Close()
//
//	if err := conn.SendCommand(ctx, corroadmin.SubsList{}); err != nil {
//	    log.Fatal(err)
//	}
type Conn interface {
	// SendCommand submits cmd and processes the reply stream until a
	// terminal response. Log responses go to the event logger and Data
	// responses to the output. Returns nil on Success, *CommandError on
	// Error, ErrNoResponse if the stream ends early.
	SendCommand(ctx context.Context, cmd Command) error

	// Close closes the connection. Safe to call multiple times.
	Close() error
}

// Connect opens a connection to ep.
//
// Returns *ConnectionError if the endpoint is missing, refuses the
// connection, or denies access.
func Connect(ctx context.Context, ep Endpoint, opts ...Option) (Conn, error) {
	return newConnImpl(ctx, ep, applyOptions(opts))
}
