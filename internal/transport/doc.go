// Package transport opens byte streams to a local admin endpoint.
//
// Two endpoint kinds exist: UnixSocket, a filesystem socket path, and
// LoopbackTCP, a port on 127.0.0.1. Both are dialed by Dial, which returns a
// SocketTransport satisfying config.Transport. Framing and message encoding
// live above this package; a SocketTransport only moves bytes.
package transport
