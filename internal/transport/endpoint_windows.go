//go:build windows

package transport

// DefaultEndpoint returns the admin endpoint of a node running with default settings.
func DefaultEndpoint() Endpoint {
	return LoopbackTCP{Port: DefaultPort}
}
