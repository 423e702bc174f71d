package corroadmin

import "github.com/joeblew999/corrosion/internal/errors"

// Re-export error types from internal package

// AdminError is the base interface for all admin client errors.
type AdminError = errors.AdminError

// ConnectionError indicates failure to open the admin endpoint.
type ConnectionError = errors.ConnectionError

// TransportError indicates an I/O failure while sending or receiving a frame.
type TransportError = errors.TransportError

// FrameTooLargeError indicates a frame above the 100 MiB limit.
type FrameTooLargeError = errors.FrameTooLargeError

// DecodeError indicates a frame payload that is not a valid message.
type DecodeError = errors.DecodeError

// CommandError is the node's explicit failure answer to a command.
type CommandError = errors.CommandError

// Re-export sentinel errors from internal package.
var (
	// ErrNoResponse indicates the stream ended before a terminal response.
	ErrNoResponse = errors.ErrNoResponse

	// ErrFrameTooLarge indicates a frame exceeded the maximum length.
	ErrFrameTooLarge = errors.ErrFrameTooLarge

	// ErrConnClosed indicates the connection has been closed.
	ErrConnClosed = errors.ErrConnClosed

	// ErrConnBroken indicates an earlier failure left the connection unusable.
	ErrConnBroken = errors.ErrConnBroken

	// ErrCommandInFlight indicates a command was submitted while another was running.
	ErrCommandInFlight = errors.ErrCommandInFlight

	// ErrUnknownResponse indicates a response variant this client does not know.
	ErrUnknownResponse = errors.ErrUnknownResponse
)
