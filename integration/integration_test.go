//go:build integration

// Package integration runs the client against a live node. Set
// CORRO_ADMIN_INTEGRATION_ENDPOINT to its admin endpoint, for example
// unix:/var/run/corrosion/admin.sock or tcp://127.0.0.1:6644.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	corroadmin "github.com/joeblew999/corrosion"
)

// liveEndpoint returns the endpoint under test, or skips the test when none is configured.
func liveEndpoint(t *testing.T) corroadmin.Endpoint {
	t.Helper()

	raw := os.Getenv("CORRO_ADMIN_INTEGRATION_ENDPOINT")
	if raw == "" {
		t.Skip("CORRO_ADMIN_INTEGRATION_ENDPOINT not set")
	}

	ep, err := corroadmin.ParseEndpoint(raw)
	require.NoError(t, err)

	return ep
}

func testContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	return ctx
}

// requireJSONOutput asserts that every rendered payload in out is valid JSON.
func requireJSONOutput(t *testing.T, out *bytes.Buffer) {
	t.Helper()

	dec := json.NewDecoder(out)

	for dec.More() {
		var v any
		require.NoError(t, dec.Decode(&v))
	}
}
