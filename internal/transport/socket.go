package transport

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/joeblew999/corrosion/internal/config"
	"github.com/joeblew999/corrosion/internal/errors"
)

// SocketTransport implements config.Transport over a dialed net.Conn.
type SocketTransport struct {
	log      *slog.Logger
	endpoint Endpoint
	conn     net.Conn

	mu       sync.Mutex
	closed   bool
	closeErr error
}

// Compile-time verification that SocketTransport implements the Transport interface.
var _ config.Transport = (*SocketTransport)(nil)

// Dial opens a stream to ep.
//
// The timeout bounds only the dial; zero means no timeout beyond ctx.
// Any failure (missing socket, permission denied, refused) is returned as
// *errors.ConnectionError.
func Dial(
	ctx context.Context,
	log *slog.Logger,
	ep Endpoint,
	timeout time.Duration,
) (*SocketTransport, error) {
	if ep == nil {
		return nil, &errors.ConnectionError{Endpoint: "<nil>", Err: fmt.Errorf("no endpoint given")}
	}

	log = log.With("component", "socket_transport", "endpoint", ep.String())
	log.Debug("Dialing admin endpoint")

	dialer := net.Dialer{Timeout: timeout}

	conn, err := dialer.DialContext(ctx, ep.Network(), ep.Address())
	if err != nil {
		log.Debug("Dial failed", "error", err)

		return nil, &errors.ConnectionError{Endpoint: ep.String(), Err: err}
	}

	log.Debug("Connected to admin endpoint")

	return NewSocketTransport(log, ep, conn), nil
}

// NewSocketTransport wraps an already-open connection.
func NewSocketTransport(log *slog.Logger, ep Endpoint, conn net.Conn) *SocketTransport {
	return &SocketTransport{
		log:      log,
		endpoint: ep,
		conn:     conn,
	}
}

// Endpoint returns the endpoint the transport was opened for.
func (t *SocketTransport) Endpoint() Endpoint {
	return t.endpoint
}

// Read implements io.Reader.
func (t *SocketTransport) Read(p []byte) (int, error) {
	return t.conn.Read(p)
}

// Write implements io.Writer.
func (t *SocketTransport) Write(p []byte) (int, error) {
	return t.conn.Write(p)
}

// Close closes the connection. It's safe to call Close multiple times;
// later calls return the result of the first.
func (t *SocketTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return t.closeErr
	}

	t.closed = true
	t.log.Debug("Closing admin connection")

	if err := t.conn.Close(); err != nil {
		t.closeErr = fmt.Errorf("close admin connection: %w", err)
	}

	return t.closeErr
}
