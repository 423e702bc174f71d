package errors

import (
	"errors"
	"fmt"
)

// AdminError is the base interface for all admin client errors.
type AdminError interface {
	error
	IsAdminError() bool
}

// Compile-time verification that all error types implement AdminError.
var (
	_ AdminError = (*ConnectionError)(nil)
	_ AdminError = (*TransportError)(nil)
	_ AdminError = (*FrameTooLargeError)(nil)
	_ AdminError = (*DecodeError)(nil)
	_ AdminError = (*CommandError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrNoResponse indicates the endpoint closed the stream before sending a
	// terminal response for the in-flight command.
	ErrNoResponse = errors.New("no response received from admin endpoint")

	// ErrFrameTooLarge indicates a frame exceeded the maximum frame length.
	ErrFrameTooLarge = errors.New("frame exceeds maximum length")

	// ErrConnClosed indicates the connection has been closed and cannot be reused.
	ErrConnClosed = errors.New("connection closed: open a new one with Connect()")

	// ErrConnBroken indicates an earlier transport or protocol failure left the
	// connection unusable.
	ErrConnBroken = errors.New("connection broken by an earlier failure: reconnect")

	// ErrCommandInFlight indicates a command was submitted while another one
	// on the same connection had not reached a terminal response.
	ErrCommandInFlight = errors.New("another command is in flight on this connection")

	// ErrUnknownResponse indicates a response variant the client does not know.
	ErrUnknownResponse = errors.New("unknown response variant")

	// ErrUnknownCommand indicates a command variant the client does not know.
	ErrUnknownCommand = errors.New("unknown command variant")
)

// ConnectionError indicates failure to open the transport to the admin endpoint.
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to admin endpoint %s: %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// IsAdminError implements AdminError.
func (e *ConnectionError) IsAdminError() bool { return true }

// TransportError indicates an I/O failure while sending or receiving a frame.
// Op is "send" or "receive".
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("admin transport %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsAdminError implements AdminError.
func (e *TransportError) IsAdminError() bool { return true }

// FrameTooLargeError indicates a frame whose length exceeds Max.
// For inbound frames Length is the declared length prefix.
type FrameTooLargeError struct {
	Length uint64
	Max    uint64
}

func (e *FrameTooLargeError) Error() string {
	return fmt.Sprintf("frame of %d bytes exceeds maximum length of %d bytes", e.Length, e.Max)
}

// Is reports ErrFrameTooLarge as a match.
func (e *FrameTooLargeError) Is(target error) bool {
	return target == ErrFrameTooLarge
}

// IsAdminError implements AdminError.
func (e *FrameTooLargeError) IsAdminError() bool { return true }

// DecodeError indicates a frame payload that is not a valid message.
// This error preserves the original raw payload that failed to decode.
type DecodeError struct {
	RawData string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode admin message: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsAdminError implements AdminError.
func (e *DecodeError) IsAdminError() bool { return true }

// CommandError is the endpoint's explicit failure answer to a command.
// Error returns the endpoint's message verbatim.
type CommandError struct {
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

// IsAdminError implements AdminError.
func (e *CommandError) IsAdminError() bool { return true }
