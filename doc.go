// Package corroadmin is a client for the Corrosion admin protocol.
//
// A Corrosion node exposes an admin endpoint on a local unix socket (or a
// loopback TCP port on Windows). Commands are sent one at a time; for each
// one the node streams back log records and data payloads, then exactly one
// terminal Success or Error.
//
// # Basic Usage
//
// For a single command, use Send:
//
//	ctx := context.Background()
//	err := corroadmin.Send(ctx, corroadmin.DefaultEndpoint(), corroadmin.ClusterMembers{},
//	    corroadmin.WithLogger(slog.Default()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Data payloads are written to os.Stdout as indented JSON unless WithOutput
// or WithRenderer say otherwise. Log records from the node are forwarded to
// the event logger (WithEventLogger) at their original severity.
//
// # Several Commands
//
// A connection can be reused after each terminal response. WithConn manages
// the lifecycle:
//
//	err := corroadmin.WithConn(ctx, corroadmin.UnixSocket{Path: "/var/run/corrosion/admin.sock"},
//	    func(c corroadmin.Conn) error {
//	        if err := c.SendCommand(ctx, corroadmin.SyncGenerate{}); err != nil {
//	            return err
//	        }
//
//	        return c.SendCommand(ctx, corroadmin.Locks{Top: 10})
//	    },
//	)
//
// Only one command may be in flight per connection; a concurrent submission
// fails with ErrCommandInFlight.
//
// # Cancellation
//
// The protocol has no cancel message. When the context passed to SendCommand
// is done, the connection is closed and the context error is returned; the
// connection cannot be used afterwards.
//
// # Error Handling
//
// The package provides typed errors for different failure scenarios:
//
//	err := corroadmin.Send(ctx, endpoint, corroadmin.Ping{})
//	if cmdErr, ok := errors.AsType[*corroadmin.CommandError](err); ok {
//	    log.Fatalf("node rejected command: %s", cmdErr.Message)
//	}
//	if errors.Is(err, corroadmin.ErrNoResponse) {
//	    log.Fatal("node closed the connection without answering")
//	}
//	if connErr, ok := errors.AsType[*corroadmin.ConnectionError](err); ok {
//	    log.Fatalf("is the node running? %v", connErr)
//	}
package corroadmin
