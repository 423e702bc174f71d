// Package config provides configuration types for the admin client.
package config

import "io"

// Transport is the bidirectional byte stream to an admin endpoint.
// Implement this to provide custom transports for testing, mocking,
// or alternative stream types.
//
// The default implementation is SocketTransport, which dials a unix
// socket or a loopback TCP port. Custom transports can be injected via
// Options.Transport.
type Transport interface {
	io.Reader
	io.Writer

	// Close terminates the stream and releases resources. It must unblock
	// any pending Read or Write and be safe to call multiple times.
	Close() error
}
