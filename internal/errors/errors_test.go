package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnectionError(t *testing.T) {
	root := errors.New("connection refused")
	err := &ConnectionError{Endpoint: "unix:/var/run/corrosion/admin.sock", Err: root}

	require.Equal(
		t,
		"failed to connect to admin endpoint unix:/var/run/corrosion/admin.sock: connection refused",
		err.Error(),
	)
	require.ErrorIs(t, err, root)
	require.True(t, err.IsAdminError())
}

func TestTransportError(t *testing.T) {
	root := errors.New("broken pipe")
	err := &TransportError{Op: "send", Err: root}

	require.Equal(t, "admin transport send failed: broken pipe", err.Error())
	require.ErrorIs(t, err, root)
	require.True(t, err.IsAdminError())
}

func TestFrameTooLargeError(t *testing.T) {
	err := &FrameTooLargeError{Length: 104857601, Max: 104857600}

	require.Equal(t, "frame of 104857601 bytes exceeds maximum length of 104857600 bytes", err.Error())
	require.ErrorIs(t, err, ErrFrameTooLarge)
	require.NotErrorIs(t, err, ErrNoResponse)
	require.True(t, err.IsAdminError())
}

func TestDecodeError(t *testing.T) {
	root := errors.New("unexpected end of JSON input")
	err := &DecodeError{RawData: `{"log":`, Err: root}

	require.Equal(t, "failed to decode admin message: unexpected end of JSON input", err.Error())
	require.ErrorIs(t, err, root)
	require.True(t, err.IsAdminError())
}

func TestCommandError_MessageIsVerbatim(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{name: "plain", message: "boom"},
		{name: "empty", message: ""},
		{name: "multiline", message: "line one\nline two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &CommandError{Message: tt.message}

			require.Equal(t, tt.message, err.Error())
			require.True(t, err.IsAdminError())
		})
	}
}

func TestAsType_ThroughWrapping(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), &CommandError{Message: "boom"})

	cmdErr, ok := errors.AsType[*CommandError](wrapped)
	require.True(t, ok)
	require.Equal(t, "boom", cmdErr.Message)
}
