package client

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/joeblew999/corrosion/internal/config"
	"github.com/joeblew999/corrosion/internal/errors"
	"github.com/joeblew999/corrosion/internal/message"
	"github.com/joeblew999/corrosion/internal/protocol"
	"github.com/joeblew999/corrosion/internal/render"
	"github.com/joeblew999/corrosion/internal/transport"
)

// Client is a connection to one admin endpoint.
type Client struct {
	log      *slog.Logger
	events   *slog.Logger
	output   io.Writer
	renderer config.Renderer
	conn     *protocol.Conn

	// Lifecycle management
	mu        sync.Mutex
	inFlight  bool
	broken    error // first failure that made the connection unusable
	closed    bool
	closeOnce sync.Once
	closeErr  error
}

// Connect opens a connection to ep.
//
// If options.Transport is set it is used instead of dialing ep.
// Returns *errors.ConnectionError if the endpoint cannot be opened.
func Connect(ctx context.Context, ep transport.Endpoint, options *config.Options) (*Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := options.Resolved()

	if opts.Transport != nil {
		opts.Logger.Debug("Using injected custom transport")

		return New(opts.Transport, opts), nil
	}

	tr, err := transport.Dial(ctx, opts.Logger, ep, opts.DialTimeout)
	if err != nil {
		return nil, err
	}

	return New(tr, opts), nil
}

// New creates a client over an already-open transport.
func New(tr config.Transport, options *config.Options) *Client {
	opts := options.Resolved()

	renderer := opts.Renderer
	if renderer == nil {
		renderer = render.JSON
	}

	log := opts.Logger.With("component", "client")

	return &Client{
		log:      log,
		events:   opts.EventLogger,
		output:   opts.Output,
		renderer: renderer,
		conn:     protocol.NewConn(log, tr),
	}
}

// SendCommand submits cmd and processes responses until a terminal one.
//
// Returns nil on Success and *errors.CommandError carrying the endpoint's
// message on Error. If the stream ends first, ErrNoResponse is returned. When
// ctx is done mid-exchange the transport is closed and ctx.Err() is returned.
func (c *Client) SendCommand(ctx context.Context, cmd message.Command) error {
	if cmd == nil {
		return fmt.Errorf("send command: nil command")
	}

	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	if err := ctx.Err(); err != nil {
		return err
	}

	id := ulid.Make().String()
	log := c.log.With("command", cmd.CommandName(), "command_id", id)
	events := c.events.With("command_id", id)

	// No cancel message exists in the protocol; closing the stream is the
	// only way to abandon a command.
	stop := context.AfterFunc(ctx, func() {
		log.Debug("Context done, closing admin connection")

		_ = c.conn.Close()
	})

	err := c.exchange(ctx, log, events, cmd)

	if !stop() {
		c.markBroken(ctx.Err())

		if err != nil {
			return ctx.Err()
		}
	}

	return err
}

// exchange runs the send-then-receive loop for one command.
func (c *Client) exchange(
	ctx context.Context,
	log *slog.Logger,
	events *slog.Logger,
	cmd message.Command,
) error {
	log.Debug("Sending command")

	if err := c.conn.Send(cmd); err != nil {
		// An oversized command is rejected before any byte is written.
		if !stderrors.Is(err, errors.ErrFrameTooLarge) {
			c.markBroken(err)
		}

		log.Error("Failed to send command", "error", err)

		return err
	}

	for {
		resp, err := c.conn.Receive()
		if err != nil {
			if err == io.EOF {
				err = errors.ErrNoResponse
			}

			c.markBroken(err)

			if ctx.Err() == nil {
				log.Error("Failed to receive response", "error", err)
			}

			return err
		}

		switch r := resp.(type) {
		case *message.Log:
			events.LogAttrs(ctx, r.Level.SlogLevel(), r.Message, slog.Time("ts", r.Timestamp))
		case *message.Data:
			if err := c.renderer(c.output, r.Value); err != nil {
				log.Warn("Failed to render data", "error", err)
			}
		case *message.Error:
			log.Error("Command failed", "error", r.Message)

			return &errors.CommandError{Message: r.Message}
		case *message.Success:
			log.Debug("Command succeeded")

			return nil
		default:
			err := fmt.Errorf("%w: unhandled response type %T", errors.ErrUnknownResponse, resp)
			c.markBroken(err)

			return err
		}
	}
}

func (c *Client) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.ErrConnClosed
	}

	if c.broken != nil {
		return fmt.Errorf("%w: %w", errors.ErrConnBroken, c.broken)
	}

	if c.inFlight {
		return errors.ErrCommandInFlight
	}

	c.inFlight = true

	return nil
}

func (c *Client) end() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.inFlight = false
}

// markBroken records the first failure that made the connection unusable.
func (c *Client) markBroken(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.broken == nil && err != nil {
		c.broken = err
	}
}

// Close closes the connection.
//
// After Close(), SendCommand returns ErrConnClosed. This method is safe to
// call multiple times.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()

		c.log.Debug("Closing client")

		c.closeErr = c.conn.Close()
	})

	return c.closeErr
}
