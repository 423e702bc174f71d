// Package tripwire turns process termination signals into a stream that
// long-running work can race against.
package tripwire

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrInterrupted indicates work was abandoned because a termination signal arrived.
	ErrInterrupted = errors.New("interrupted by signal")

	// ErrStreamClosed indicates the signal stream has no more values.
	ErrStreamClosed = errors.New("signal stream closed")
)

// InterruptedError carries the signal that interrupted Run.
type InterruptedError struct {
	Signal os.Signal
}

func (e *InterruptedError) Error() string {
	return fmt.Sprintf("interrupted by signal %s", e.Signal)
}

// Is reports ErrInterrupted as a match.
func (e *InterruptedError) Is(target error) bool {
	return target == ErrInterrupted
}

// SignalStream yields one value per received termination signal.
type SignalStream struct {
	ch       <-chan os.Signal
	stop     func()
	stopOnce sync.Once
}

// Notify subscribes to the platform's termination signals
// (SIGINT and SIGTERM on unix, os.Interrupt on windows).
// Call Stop to restore default signal handling.
func Notify() *SignalStream {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, terminationSignals...)

	return &SignalStream{
		ch:   ch,
		stop: func() { signal.Stop(ch) },
	}
}

// FromChannel builds a stream over an existing channel. Stop is a no-op.
func FromChannel(ch <-chan os.Signal) *SignalStream {
	return &SignalStream{ch: ch, stop: func() {}}
}

// Next blocks until a signal arrives or ctx is done.
func (s *SignalStream) Next(ctx context.Context) (os.Signal, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case sig, ok := <-s.ch:
		if !ok {
			return nil, ErrStreamClosed
		}

		return sig, nil
	}
}

// Stop unsubscribes from signals. It's safe to call Stop multiple times.
func (s *SignalStream) Stop() {
	s.stopOnce.Do(s.stop)
}

// Run calls fn and returns its result, unless a signal arrives first. In
// that case the context passed to fn is cancelled and Run returns an
// *InterruptedError once fn has returned.
func Run(ctx context.Context, stream *SignalStream, fn func(context.Context) error) error {
	eg, egCtx := errgroup.WithContext(ctx)
	watchCtx, stopWatch := context.WithCancel(egCtx)

	defer stopWatch()

	eg.Go(func() error {
		defer stopWatch()

		return fn(egCtx)
	})

	eg.Go(func() error {
		sig, err := stream.Next(watchCtx)
		if err != nil {
			return nil
		}

		return &InterruptedError{Signal: sig}
	})

	return eg.Wait()
}
