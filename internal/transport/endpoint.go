package transport

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

const (
	// DefaultSocketPath is the admin socket of a node on unix-like hosts.
	DefaultSocketPath = "/var/run/corrosion/admin.sock"

	// DefaultPort is the loopback admin port used where unix sockets are unavailable.
	DefaultPort uint16 = 6644

	loopbackHost = "127.0.0.1"
)

// Endpoint is an address of a local admin endpoint.
// Implementations: UnixSocket, LoopbackTCP.
type Endpoint interface {
	// Network returns the net.Dial network name.
	Network() string
	// Address returns the net.Dial address.
	Address() string
	// String returns the endpoint in a form ParseEndpoint accepts.
	String() string

	endpoint() // marker method
}

// Compile-time verification that endpoint types implement Endpoint.
var (
	_ Endpoint = UnixSocket{}
	_ Endpoint = LoopbackTCP{}
)

// UnixSocket is a filesystem socket path.
type UnixSocket struct {
	Path string
}

func (UnixSocket) endpoint() {}

// Network implements Endpoint.
func (UnixSocket) Network() string { return "unix" }

// Address implements Endpoint.
func (e UnixSocket) Address() string { return e.Path }

func (e UnixSocket) String() string { return "unix:" + e.Path }

// LoopbackTCP is a TCP port on 127.0.0.1.
type LoopbackTCP struct {
	Port uint16
}

func (LoopbackTCP) endpoint() {}

// Network implements Endpoint.
func (LoopbackTCP) Network() string { return "tcp" }

// Address implements Endpoint.
func (e LoopbackTCP) Address() string {
	return net.JoinHostPort(loopbackHost, strconv.FormatUint(uint64(e.Port), 10))
}

func (e LoopbackTCP) String() string { return "tcp://" + e.Address() }

// ParseEndpoint parses an endpoint from user input.
//
// Accepted forms:
//
//	unix:/path/admin.sock    unix:///path/admin.sock    /path/admin.sock
//	tcp:6644    tcp://127.0.0.1:6644    localhost:6644    6644
//
// TCP endpoints must name a loopback host.
func ParseEndpoint(raw string) (Endpoint, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, fmt.Errorf("admin endpoint required")
	}

	switch {
	case strings.HasPrefix(s, "unix://"):
		return unixEndpoint(raw, strings.TrimPrefix(s, "unix://"))
	case strings.HasPrefix(s, "unix:"):
		return unixEndpoint(raw, strings.TrimPrefix(s, "unix:"))
	case strings.HasPrefix(s, "tcp://"):
		return tcpEndpoint(raw, strings.TrimPrefix(s, "tcp://"))
	case strings.HasPrefix(s, "tcp:"):
		return tcpEndpoint(raw, strings.TrimPrefix(s, "tcp:"))
	}

	if isDigits(s) {
		return tcpEndpoint(raw, s)
	}

	if host, port, err := net.SplitHostPort(s); err == nil && isDigits(port) && !strings.ContainsAny(host, `/\`) {
		return tcpEndpoint(raw, s)
	}

	return UnixSocket{Path: s}, nil
}

func unixEndpoint(raw, path string) (Endpoint, error) {
	if path == "" {
		return nil, fmt.Errorf("invalid admin endpoint %q: empty socket path", raw)
	}

	return UnixSocket{Path: path}, nil
}

// tcpEndpoint accepts either a bare port or host:port.
func tcpEndpoint(raw, addr string) (Endpoint, error) {
	portText := addr

	if !isDigits(addr) {
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid admin endpoint %q: %w", raw, err)
		}

		if !isLoopbackHost(host) {
			return nil, fmt.Errorf("invalid admin endpoint %q: host %q is not loopback", raw, host)
		}

		portText = port
	}

	port, err := strconv.ParseUint(portText, 10, 16)
	if err != nil || port == 0 {
		return nil, fmt.Errorf("invalid admin endpoint %q: bad port %q", raw, portText)
	}

	return LoopbackTCP{Port: uint16(port)}, nil
}

func isLoopbackHost(host string) bool {
	return host == "" || host == loopbackHost || strings.EqualFold(host, "localhost")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
