package message

import (
	stderrors "errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/corrosion/internal/errors"
)

var (
	testActorID = uuid.MustParse("6f1a8f2e-3c55-4a1b-9d7e-2b8c0f4e5a61")
	testSubID   = uuid.MustParse("0c9b5f1e-7a2d-4e3f-8b6a-1d2c3e4f5a6b")
)

func commandWireCases() []struct {
	name string
	cmd  Command
	wire string
} {
	hash := "a1b2c3"

	return []struct {
		name string
		cmd  Command
		wire string
	}{
		{name: "ping", cmd: Ping{}, wire: `"ping"`},
		{name: "sync generate", cmd: SyncGenerate{}, wire: `{"sync":"generate"}`},
		{name: "sync reconcile gaps", cmd: SyncReconcileGaps{}, wire: `{"sync":"reconcile_gaps"}`},
		{name: "locks", cmd: Locks{Top: 10}, wire: `{"locks":{"top":10}}`},
		{name: "locks zero", cmd: Locks{}, wire: `{"locks":{"top":0}}`},
		{name: "cluster rejoin", cmd: ClusterRejoin{}, wire: `{"cluster":"rejoin"}`},
		{name: "cluster members", cmd: ClusterMembers{}, wire: `{"cluster":"members"}`},
		{name: "cluster membership states", cmd: ClusterMembershipStates{}, wire: `{"cluster":"membership_states"}`},
		{
			name: "cluster set id",
			cmd:  ClusterSetID{ActorID: testActorID},
			wire: `{"cluster":{"set_id":"6f1a8f2e-3c55-4a1b-9d7e-2b8c0f4e5a61"}}`,
		},
		{
			name: "actor version",
			cmd:  ActorVersion{ActorID: testActorID, Version: 42},
			wire: `{"actor":{"version":{"actor_id":"6f1a8f2e-3c55-4a1b-9d7e-2b8c0f4e5a61","version":42}}}`,
		},
		{name: "subs list", cmd: SubsList{}, wire: `{"subs":"list"}`},
		{
			name: "subs info by id",
			cmd:  SubsInfo{ID: &testSubID},
			wire: `{"subs":{"info":{"hash":null,"id":"0c9b5f1e-7a2d-4e3f-8b6a-1d2c3e4f5a6b"}}}`,
		},
		{
			name: "subs info by hash",
			cmd:  SubsInfo{Hash: &hash},
			wire: `{"subs":{"info":{"hash":"a1b2c3","id":null}}}`,
		},
		{name: "subs info empty", cmd: SubsInfo{}, wire: `{"subs":{"info":{"hash":null,"id":null}}}`},
		{name: "log set", cmd: LogSet{Filter: "info,corro_agent=debug"}, wire: `{"log":{"set":{"filter":"info,corro_agent=debug"}}}`},
		{name: "log set empty", cmd: LogSet{}, wire: `{"log":{"set":{"filter":""}}}`},
		{name: "log reset", cmd: LogReset{}, wire: `{"log":"reset"}`},
	}
}

func TestEncodeCommand_WireForms(t *testing.T) {
	for _, tt := range commandWireCases() {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeCommand(tt.cmd)
			require.NoError(t, err)
			require.JSONEq(t, tt.wire, string(got))
		})
	}
}

func TestCommand_RoundTrip(t *testing.T) {
	for _, tt := range commandWireCases() {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeCommand(tt.cmd)
			require.NoError(t, err)

			got, err := ParseCommand(data)
			require.NoError(t, err)
			require.Equal(t, tt.cmd, got)
			require.Equal(t, tt.cmd.CommandName(), got.CommandName())
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		wantUnknown bool
	}{
		{name: "empty", data: ``},
		{name: "malformed", data: `{"sync":`},
		{name: "unknown top level", data: `"shutdown"`, wantUnknown: true},
		{name: "unknown sync", data: `{"sync":"everything"}`, wantUnknown: true},
		{name: "unknown cluster", data: `{"cluster":"leave"}`, wantUnknown: true},
		{name: "unknown actor", data: `{"actor":{"bookie":{}}}`, wantUnknown: true},
		{name: "unknown subs", data: `{"subs":"drop"}`, wantUnknown: true},
		{name: "unknown log", data: `{"log":"rotate"}`, wantUnknown: true},
		{name: "locks missing top", data: `{"locks":{}}`},
		{name: "locks as unit", data: `"locks"`},
		{name: "bad actor uuid", data: `{"cluster":{"set_id":"not-a-uuid"}}`},
		{name: "log set missing filter", data: `{"log":{"set":{}}}`},
		{name: "ping with payload", data: `{"ping":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCommand([]byte(tt.data))
			require.Error(t, err)

			_, ok := stderrors.AsType[*errors.DecodeError](err)
			require.True(t, ok, "expected DecodeError, got %T", err)
			require.Equal(t, tt.wantUnknown, stderrors.Is(err, errors.ErrUnknownCommand))
		})
	}
}

func TestEncodeCommand_Nil(t *testing.T) {
	_, err := EncodeCommand(nil)
	require.Error(t, err)
}
