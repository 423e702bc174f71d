package transport

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joeblew999/corrosion/internal/errors"
)

func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// shortSocketPath returns a socket path short enough for sun_path limits.
func shortSocketPath(t *testing.T) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "corro")
	require.NoError(t, err)

	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	return filepath.Join(dir, "a.sock")
}

// echoOnce accepts one connection and echoes what it reads until EOF.
func echoOnce(t *testing.T, ln net.Listener) {
	t.Helper()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}

		defer conn.Close()

		_, _ = io.Copy(conn, conn)
	}()
}

func TestDial_UnixSocket(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix sockets not exercised on windows")
	}

	path := shortSocketPath(t)

	ln, err := net.Listen("unix", path)
	require.NoError(t, err)

	t.Cleanup(func() { _ = ln.Close() })
	echoOnce(t, ln)

	ep := UnixSocket{Path: path}

	tr, err := Dial(context.Background(), nopLogger(), ep, time.Second)
	require.NoError(t, err)
	require.Equal(t, ep, tr.Endpoint())

	assertEcho(t, tr)
	require.NoError(t, tr.Close())
}

func TestDial_LoopbackTCP(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	t.Cleanup(func() { _ = ln.Close() })
	echoOnce(t, ln)

	port := ln.Addr().(*net.TCPAddr).Port

	tr, err := Dial(context.Background(), nopLogger(), LoopbackTCP{Port: uint16(port)}, time.Second)
	require.NoError(t, err)

	assertEcho(t, tr)
	require.NoError(t, tr.Close())
}

func assertEcho(t *testing.T, tr *SocketTransport) {
	t.Helper()

	_, err := tr.Write([]byte("hello"))
	require.NoError(t, err)

	buf := make([]byte, 5)
	_, err = io.ReadFull(tr, buf)
	require.NoError(t, err)
	require.Equal(t, "hello", string(buf))
}

func TestDial_MissingSocket(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix sockets not exercised on windows")
	}

	ep := UnixSocket{Path: shortSocketPath(t)}

	_, err := Dial(context.Background(), nopLogger(), ep, time.Second)
	require.Error(t, err)

	connErr, ok := stderrors.AsType[*errors.ConnectionError](err)
	require.True(t, ok, "expected ConnectionError, got %T", err)
	require.Equal(t, ep.String(), connErr.Endpoint)
	require.Contains(t, err.Error(), "failed to connect to admin endpoint")
}

func TestDial_Refused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	_, err = Dial(context.Background(), nopLogger(), LoopbackTCP{Port: uint16(port)}, time.Second)

	_, ok := stderrors.AsType[*errors.ConnectionError](err)
	require.True(t, ok, "expected ConnectionError, got %v", err)
}

func TestDial_CancelledContext(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	t.Cleanup(func() { _ = ln.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	port := ln.Addr().(*net.TCPAddr).Port

	_, err = Dial(ctx, nopLogger(), LoopbackTCP{Port: uint16(port)}, time.Second)
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDial_NilEndpoint(t *testing.T) {
	_, err := Dial(context.Background(), nopLogger(), nil, time.Second)

	_, ok := stderrors.AsType[*errors.ConnectionError](err)
	require.True(t, ok)
}

func TestSocketTransport_CloseIdempotent(t *testing.T) {
	client, server := net.Pipe()
	t.Cleanup(func() { _ = server.Close() })

	tr := NewSocketTransport(nopLogger(), LoopbackTCP{Port: 1}, client)

	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close())

	_, err := tr.Read(make([]byte, 1))
	require.Error(t, err)
}

func TestSocketTransport_CloseUnblocksRead(t *testing.T) {
	client, server := net.Pipe()
	t.Cleanup(func() { _ = server.Close() })

	tr := NewSocketTransport(nopLogger(), LoopbackTCP{Port: 1}, client)

	done := make(chan error, 1)

	go func() {
		_, err := tr.Read(make([]byte, 1))
		done <- err
	}()

	require.NoError(t, tr.Close())

	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("read did not unblock after Close")
	}
}
