// Package frame implements the length-delimited framing used on the admin socket.
//
// Each frame is a 4-byte big-endian length prefix followed by that many payload
// bytes. The prefix does not count itself. Frames larger than MaxLength are a
// protocol violation in both directions.
package frame

import (
	"encoding/binary"
	stderrors "errors"
	"io"

	"github.com/joeblew999/corrosion/internal/errors"
)

const (
	// HeaderLen is the size of the length prefix.
	HeaderLen = 4

	// MaxLength is the maximum payload length of a single frame (100 MiB).
	MaxLength = 100 * 1024 * 1024
)

// Read reads one frame from r and returns its payload.
//
// Returns io.EOF only when the stream ends cleanly before the first header
// byte. A stream that ends inside a frame returns io.ErrUnexpectedEOF. A
// declared length above maxLength returns *errors.FrameTooLargeError without
// reading any payload bytes.
func Read(r io.Reader, maxLength uint32) ([]byte, error) {
	var header [HeaderLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, err
	}

	length := binary.BigEndian.Uint32(header[:])
	if length > maxLength {
		return nil, &errors.FrameTooLargeError{Length: uint64(length), Max: uint64(maxLength)}
	}

	payload := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			if stderrors.Is(err, io.EOF) {
				return nil, io.ErrUnexpectedEOF
			}

			return nil, err
		}
	}

	return payload, nil
}

// Write writes payload to w as one frame.
//
// Payloads above maxLength are rejected before anything is written. Header
// and payload go out in a single Write call so a frame is never interleaved.
func Write(w io.Writer, payload []byte, maxLength uint32) error {
	if uint64(len(payload)) > uint64(maxLength) {
		return &errors.FrameTooLargeError{Length: uint64(len(payload)), Max: uint64(maxLength)}
	}

	buf := make([]byte, HeaderLen+len(payload))
	binary.BigEndian.PutUint32(buf[:HeaderLen], uint32(len(payload)))
	copy(buf[HeaderLen:], payload)

	_, err := w.Write(buf)

	return err
}
