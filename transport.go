package corroadmin

import (
	"github.com/joeblew999/corrosion/internal/config"
	"github.com/joeblew999/corrosion/internal/transport"
)

// Transport is the byte stream to an admin endpoint.
// Implement this to provide custom transports for testing, mocking,
// or alternative stream types.
//
// The default implementation dials the Endpoint given to Connect.
// Custom transports can be injected via WithTransport.
type Transport = config.Transport

// Endpoint is the address of a local admin endpoint.
// Implementations: UnixSocket, LoopbackTCP.
type Endpoint = transport.Endpoint

// UnixSocket is a filesystem socket path.
type UnixSocket = transport.UnixSocket

// LoopbackTCP is a TCP port on 127.0.0.1.
type LoopbackTCP = transport.LoopbackTCP

const (
	// DefaultSocketPath is the admin socket of a node on unix-like hosts.
	DefaultSocketPath = transport.DefaultSocketPath

	// DefaultPort is the loopback admin port used on Windows.
	DefaultPort = transport.DefaultPort
)

// DefaultEndpoint returns the admin endpoint of a node running with default
// settings on this platform.
func DefaultEndpoint() Endpoint {
	return transport.DefaultEndpoint()
}

// ParseEndpoint parses "unix:<path>", a bare path, "tcp:<port>",
// "tcp://127.0.0.1:<port>", "localhost:<port>" or a bare port number.
func ParseEndpoint(s string) (Endpoint, error) {
	return transport.ParseEndpoint(s)
}
