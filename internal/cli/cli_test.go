package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	corroadmin "github.com/joeblew999/corrosion"
	"github.com/joeblew999/corrosion/internal/protocol"
)

// fakeNode serves one admin connection on a loopback port. Every command
// it receives is recorded and answered with replies.
type fakeNode struct {
	port     int
	eg       errgroup.Group
	received []corroadmin.Command
}

func startFakeNode(t *testing.T, replies ...corroadmin.Response) *fakeNode {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	t.Cleanup(func() { _ = ln.Close() })

	node := &fakeNode{port: ln.Addr().(*net.TCPAddr).Port}

	node.eg.Go(func() error {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}

		defer conn.Close()

		peer := protocol.NewPeer(conn)

		for {
			cmd, err := peer.ReceiveCommand()
			if errors.Is(err, io.EOF) {
				return nil
			}

			if err != nil {
				return err
			}

			node.received = append(node.received, cmd)

			for _, resp := range replies {
				if err := peer.SendResponse(resp); err != nil {
					return err
				}
			}
		}
	})

	return node
}

// run executes the root command with args against a clean working
// directory and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer

	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func TestCommands_BuildWireCommands(t *testing.T) {
	actor := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	hash := "a1b2c3"

	tests := []struct {
		name string
		args []string
		want corroadmin.Command
	}{
		{"ping", []string{"ping"}, corroadmin.Ping{}},
		{"sync generate", []string{"sync", "generate"}, corroadmin.SyncGenerate{}},
		{"sync reconcile-gaps", []string{"sync", "reconcile-gaps"}, corroadmin.SyncReconcileGaps{}},
		{"locks default top", []string{"locks"}, corroadmin.Locks{Top: DefaultLocksTop}},
		{"locks top", []string{"locks", "--top", "3"}, corroadmin.Locks{Top: 3}},
		{"cluster rejoin", []string{"cluster", "rejoin"}, corroadmin.ClusterRejoin{}},
		{"cluster members", []string{"cluster", "members"}, corroadmin.ClusterMembers{}},
		{"cluster membership-states", []string{"cluster", "membership-states"}, corroadmin.ClusterMembershipStates{}},
		{"cluster set-id", []string{"cluster", "set-id", actor.String()}, corroadmin.ClusterSetID{ActorID: actor}},
		{
			"actor version",
			[]string{"actor", "version", actor.String(), "42"},
			corroadmin.ActorVersion{ActorID: actor, Version: 42},
		},
		{"subs list", []string{"subs", "list"}, corroadmin.SubsList{}},
		{"subs info hash", []string{"subs", "info", "--hash", hash}, corroadmin.SubsInfo{Hash: &hash}},
		{"subs info id", []string{"subs", "info", "--id", actor.String()}, corroadmin.SubsInfo{ID: &actor}},
		{"log set", []string{"log", "set", "corro_agent=debug"}, corroadmin.LogSet{Filter: "corro_agent=debug"}},
		{"log reset", []string{"log", "reset"}, corroadmin.LogReset{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := startFakeNode(t, &corroadmin.SuccessResponse{})

			args := append([]string{"--admin-port", strconv.Itoa(node.port)}, tt.args...)

			_, _, err := run(t, args...)
			require.NoError(t, err)
			require.NoError(t, node.eg.Wait())

			require.Len(t, node.received, 1)
			assert.Equal(t, tt.want, node.received[0])
		})
	}
}

func TestCommands_ArgumentValidation(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		errSubstr string
	}{
		{"set-id bad uuid", []string{"cluster", "set-id", "not-a-uuid"}, "invalid actor id"},
		{"set-id missing arg", []string{"cluster", "set-id"}, "accepts 1 arg"},
		{"actor version bad version", []string{"actor", "version", uuid.NewString(), "latest"}, "invalid version"},
		{"subs info no selector", []string{"subs", "info"}, "one of --hash or --id"},
		{"subs info bad id", []string{"subs", "info", "--id", "xyz"}, "invalid subscription id"},
		{"locks negative top", []string{"locks", "--top=-1"}, "must not be negative"},
		{"ping extra arg", []string{"ping", "now"}, "unknown command"},
		{"bad output", []string{"--output", "yaml", "ping"}, "unknown output format"},
		{"bad log level", []string{"--log-level", "loud", "ping"}, "unknown log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestRun_PrintsDataAndLogs(t *testing.T) {
	node := startFakeNode(t,
		&corroadmin.LogResponse{Level: corroadmin.LogLevelInfo, Message: "collecting members"},
		&corroadmin.DataResponse{Value: json.RawMessage(`[{"actor_id":"a","state":"alive"}]`)},
		&corroadmin.SuccessResponse{},
	)

	stdout, stderr, err := run(t, "--admin-port", strconv.Itoa(node.port), "-o", "table", "cluster", "members")
	require.NoError(t, err)
	require.NoError(t, node.eg.Wait())

	assert.Contains(t, stdout, "alive")
	assert.Contains(t, stdout, "(1 rows)")
	assert.Contains(t, stderr, "collecting members")
	assert.Contains(t, stderr, "level=INFO")
}

func TestRun_CommandError(t *testing.T) {
	node := startFakeNode(t, &corroadmin.ErrorResponse{Message: "no such actor"})

	_, _, err := run(t, "--admin-port", strconv.Itoa(node.port), "actor", "version", uuid.NewString(), "7")
	require.NoError(t, node.eg.Wait())

	cmdErr, ok := errors.AsType[*corroadmin.CommandError](err)
	require.True(t, ok, "expected CommandError, got %T", err)
	assert.Equal(t, "no such actor", cmdErr.Message)
}

func TestRun_UnreachableEndpoint(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	_, _, err = run(t, "--admin-port", strconv.Itoa(port), "ping")

	_, ok := errors.AsType[*corroadmin.ConnectionError](err)
	require.True(t, ok, "expected ConnectionError, got %T", err)
}

func TestRun_TimeoutCancelsCommand(t *testing.T) {
	// The node accepts the command but never answers.
	node := startFakeNode(t)

	_, _, err := run(t, "--admin-port", strconv.Itoa(node.port), "--timeout", "100ms", "sync", "generate")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.NoError(t, node.eg.Wait())
}

func TestNewLogger_TraceLevel(t *testing.T) {
	var buf bytes.Buffer

	log, err := NewLogger(&buf, "trace")
	require.NoError(t, err)

	log.Log(context.Background(), corroadmin.LevelTrace, "deep detail")
	log.Info("routine")

	out := buf.String()
	assert.Contains(t, out, "level=TRACE")
	assert.Contains(t, out, "deep detail")
	assert.Contains(t, out, "level=INFO")
}

func TestNewLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer

	log, err := NewLogger(&buf, "warn")
	require.NoError(t, err)

	log.Info("hidden")
	log.Log(context.Background(), slog.LevelWarn, "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
