package protocol

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/joeblew999/corrosion/internal/config"
	"github.com/joeblew999/corrosion/internal/errors"
	"github.com/joeblew999/corrosion/internal/frame"
	"github.com/joeblew999/corrosion/internal/message"
)

// Conn is the client side of the admin protocol over one transport.
//
// Conn is not safe for concurrent use; the caller serializes Send and Receive.
type Conn struct {
	log       *slog.Logger
	transport config.Transport
	reader    *bufio.Reader
}

// NewConn wraps transport in the admin framing and message encoding.
func NewConn(log *slog.Logger, transport config.Transport) *Conn {
	return &Conn{
		log:       log.With("component", "protocol"),
		transport: transport,
		reader:    bufio.NewReader(transport),
	}
}

// Send encodes cmd and writes it as one frame.
func (c *Conn) Send(cmd message.Command) error {
	data, err := message.EncodeCommand(cmd)
	if err != nil {
		return err
	}

	if err := writeFrame(c.transport, data); err != nil {
		return err
	}

	c.log.Debug("Sent command frame", "command", cmd.CommandName(), "bytes", len(data))

	return nil
}

// Receive reads and decodes the next response.
//
// Returns io.EOF when the stream ends cleanly before a new frame.
func (c *Conn) Receive() (message.Response, error) {
	data, err := readFrame(c.reader)
	if err != nil {
		return nil, err
	}

	resp, err := message.ParseResponse(data)
	if err != nil {
		return nil, err
	}

	c.log.Debug("Received response frame", "type", resp.ResponseType(), "bytes", len(data))

	return resp, nil
}

// Close closes the underlying transport.
func (c *Conn) Close() error {
	return c.transport.Close()
}

// Peer is the endpoint side of the admin protocol over one stream.
type Peer struct {
	rw     io.ReadWriter
	reader *bufio.Reader
}

// NewPeer wraps rw as the endpoint half of a connection.
func NewPeer(rw io.ReadWriter) *Peer {
	return &Peer{rw: rw, reader: bufio.NewReader(rw)}
}

// ReceiveCommand reads and decodes the next command.
//
// Returns io.EOF when the client has closed the stream.
func (p *Peer) ReceiveCommand() (message.Command, error) {
	data, err := readFrame(p.reader)
	if err != nil {
		return nil, err
	}

	return message.ParseCommand(data)
}

// SendResponse encodes resp and writes it as one frame.
func (p *Peer) SendResponse(resp message.Response) error {
	data, err := message.EncodeResponse(resp)
	if err != nil {
		return err
	}

	return writeFrame(p.rw, data)
}

// WriteRaw writes payload as one frame without encoding it.
func (p *Peer) WriteRaw(payload []byte) error {
	return writeFrame(p.rw, payload)
}

func writeFrame(w io.Writer, data []byte) error {
	err := frame.Write(w, data, frame.MaxLength)
	if err == nil {
		return nil
	}

	if stderrors.Is(err, errors.ErrFrameTooLarge) {
		return err
	}

	return &errors.TransportError{Op: "send", Err: err}
}

func readFrame(r io.Reader) ([]byte, error) {
	data, err := frame.Read(r, frame.MaxLength)
	if err == nil {
		return data, nil
	}

	switch {
	case err == io.EOF:
		return nil, io.EOF
	case stderrors.Is(err, errors.ErrFrameTooLarge):
		return nil, err
	default:
		return nil, &errors.TransportError{Op: "receive", Err: fmt.Errorf("read frame: %w", err)}
	}
}
