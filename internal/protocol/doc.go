// Package protocol binds the admin message types to the framed byte stream.
//
// A Conn is the client half: it sends Commands and receives Responses. A Peer
// is the endpoint half, receiving Commands and sending Responses; the client
// never uses it, but fake endpoints built on it speak exactly the same wire
// format.
//
// Both halves map failures onto the admin error taxonomy:
//   - io.EOF is returned unchanged when the stream ends cleanly between frames
//   - *errors.FrameTooLargeError for a declared or outgoing length above frame.MaxLength
//   - *errors.TransportError for any other read or write failure
//   - *errors.DecodeError for payloads that are not a known message
//
// Example usage:
//
//	conn := protocol.NewConn(log, transport)
//	if err := conn.Send(message.Ping{}); err != nil {
//	    return err
//	}
//
//	resp, err := conn.Receive()
package protocol
