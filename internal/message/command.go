package message

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Command is one request submitted to the admin endpoint.
// The set of implementations is closed; see the table in ParseCommand.
type Command interface {
	// CommandName returns a dotted, human-readable name such as "sync.generate".
	CommandName() string

	wire() any
}

// Compile-time verification that all command types implement Command.
var (
	_ Command = Ping{}
	_ Command = SyncGenerate{}
	_ Command = SyncReconcileGaps{}
	_ Command = Locks{}
	_ Command = ClusterRejoin{}
	_ Command = ClusterMembers{}
	_ Command = ClusterMembershipStates{}
	_ Command = ClusterSetID{}
	_ Command = ActorVersion{}
	_ Command = SubsList{}
	_ Command = SubsInfo{}
	_ Command = LogSet{}
	_ Command = LogReset{}
)

// Ping checks that the endpoint is alive.
type Ping struct{}

// CommandName implements the Command interface.
func (Ping) CommandName() string { return "ping" }

func (Ping) wire() any { return "ping" }

// MarshalJSON implements json.Marshaler.
func (c Ping) MarshalJSON() ([]byte, error) { return json.Marshal(c.wire()) }

// SyncGenerate asks the endpoint to generate its sync state.
type SyncGenerate struct{}

// CommandName implements the Command interface.
func (SyncGenerate) CommandName() string { return "sync.generate" }

func (SyncGenerate) wire() any { return tagged("sync", "generate") }

// MarshalJSON implements json.Marshaler.
func (c SyncGenerate) MarshalJSON() ([]byte, error) { return json.Marshal(c.wire()) }

// SyncReconcileGaps asks the endpoint to reconcile gaps in its bookkeeping.
type SyncReconcileGaps struct{}

// CommandName implements the Command interface.
func (SyncReconcileGaps) CommandName() string { return "sync.reconcile_gaps" }

func (SyncReconcileGaps) wire() any { return tagged("sync", "reconcile_gaps") }

// MarshalJSON implements json.Marshaler.
func (c SyncReconcileGaps) MarshalJSON() ([]byte, error) { return json.Marshal(c.wire()) }

// Locks lists the Top longest-held locks.
type Locks struct {
	Top int
}

// CommandName implements the Command interface.
func (Locks) CommandName() string { return "locks" }

func (c Locks) wire() any { return tagged("locks", map[string]int{"top": c.Top}) }

// MarshalJSON implements json.Marshaler.
func (c Locks) MarshalJSON() ([]byte, error) { return json.Marshal(c.wire()) }

// ClusterRejoin makes the node rejoin the cluster.
type ClusterRejoin struct{}

// CommandName implements the Command interface.
func (ClusterRejoin) CommandName() string { return "cluster.rejoin" }

func (ClusterRejoin) wire() any { return tagged("cluster", "rejoin") }

// MarshalJSON implements json.Marshaler.
func (c ClusterRejoin) MarshalJSON() ([]byte, error) { return json.Marshal(c.wire()) }

// ClusterMembers lists known cluster members.
type ClusterMembers struct{}

// CommandName implements the Command interface.
func (ClusterMembers) CommandName() string { return "cluster.members" }

func (ClusterMembers) wire() any { return tagged("cluster", "members") }

// MarshalJSON implements json.Marshaler.
func (c ClusterMembers) MarshalJSON() ([]byte, error) { return json.Marshal(c.wire()) }

// ClusterMembershipStates dumps the membership state of every known member.
type ClusterMembershipStates struct{}

// CommandName implements the Command interface.
func (ClusterMembershipStates) CommandName() string { return "cluster.membership_states" }

func (ClusterMembershipStates) wire() any { return tagged("cluster", "membership_states") }

// MarshalJSON implements json.Marshaler.
func (c ClusterMembershipStates) MarshalJSON() ([]byte, error) { return json.Marshal(c.wire()) }

// ClusterSetID replaces the node's actor id.
type ClusterSetID struct {
	ActorID uuid.UUID
}

// CommandName implements the Command interface.
func (ClusterSetID) CommandName() string { return "cluster.set_id" }

func (c ClusterSetID) wire() any {
	return tagged("cluster", tagged("set_id", c.ActorID))
}

// MarshalJSON implements json.Marshaler.
func (c ClusterSetID) MarshalJSON() ([]byte, error) { return json.Marshal(c.wire()) }

// ActorVersion looks up one version of one actor's changes.
type ActorVersion struct {
	ActorID uuid.UUID
	Version uint64
}

// CommandName implements the Command interface.
func (ActorVersion) CommandName() string { return "actor.version" }

type actorVersionBody struct {
	ActorID uuid.UUID `json:"actor_id"`
	Version uint64    `json:"version"`
}

func (c ActorVersion) wire() any {
	return tagged("actor", tagged("version", actorVersionBody(c)))
}

// MarshalJSON implements json.Marshaler.
func (c ActorVersion) MarshalJSON() ([]byte, error) { return json.Marshal(c.wire()) }

// SubsList lists active subscriptions.
type SubsList struct{}

// CommandName implements the Command interface.
func (SubsList) CommandName() string { return "subs.list" }

func (SubsList) wire() any { return tagged("subs", "list") }

// MarshalJSON implements json.Marshaler.
func (c SubsList) MarshalJSON() ([]byte, error) { return json.Marshal(c.wire()) }

// SubsInfo describes one subscription, selected by query hash or id.
// Either field may be nil.
type SubsInfo struct {
	Hash *string
	ID   *uuid.UUID
}

// CommandName implements the Command interface.
func (SubsInfo) CommandName() string { return "subs.info" }

type subsInfoBody struct {
	Hash *string    `json:"hash"`
	ID   *uuid.UUID `json:"id"`
}

func (c SubsInfo) wire() any {
	return tagged("subs", tagged("info", subsInfoBody(c)))
}

// MarshalJSON implements json.Marshaler.
func (c SubsInfo) MarshalJSON() ([]byte, error) { return json.Marshal(c.wire()) }

// LogSet replaces the endpoint's log filter directive.
type LogSet struct {
	Filter string
}

// CommandName implements the Command interface.
func (LogSet) CommandName() string { return "log.set" }

func (c LogSet) wire() any {
	return tagged("log", tagged("set", map[string]string{"filter": c.Filter}))
}

// MarshalJSON implements json.Marshaler.
func (c LogSet) MarshalJSON() ([]byte, error) { return json.Marshal(c.wire()) }

// LogReset restores the endpoint's configured log filter.
type LogReset struct{}

// CommandName implements the Command interface.
func (LogReset) CommandName() string { return "log.reset" }

func (LogReset) wire() any { return tagged("log", "reset") }

// MarshalJSON implements json.Marshaler.
func (c LogReset) MarshalJSON() ([]byte, error) { return json.Marshal(c.wire()) }

// EncodeCommand returns the wire JSON of cmd.
func EncodeCommand(cmd Command) ([]byte, error) {
	if cmd == nil {
		return nil, fmt.Errorf("encode command: nil command")
	}

	data, err := json.Marshal(cmd.wire())
	if err != nil {
		return nil, fmt.Errorf("encode command %s: %w", cmd.CommandName(), err)
	}

	return data, nil
}

// ParseCommand decodes one command from its wire JSON. It is the far-end
// counterpart of EncodeCommand:
//
//	"ping"                                       Ping
//	{"sync":"generate"|"reconcile_gaps"}         SyncGenerate, SyncReconcileGaps
//	{"locks":{"top":N}}                          Locks
//	{"cluster":"rejoin"|"members"|"membership_states"}
//	{"cluster":{"set_id":UUID}}                  ClusterSetID
//	{"actor":{"version":{"actor_id":UUID,"version":N}}}
//	{"subs":"list"}, {"subs":{"info":{"hash":S,"id":UUID}}}
//	{"log":{"set":{"filter":S}}}, {"log":"reset"}
func ParseCommand(data []byte) (Command, error) {
	tag, body, err := splitVariant(data)
	if err != nil {
		return nil, decodeError(data, err)
	}

	var cmd Command

	switch tag {
	case "ping":
		if body != nil {
			err = fmt.Errorf("ping: unexpected payload")
		} else {
			cmd = Ping{}
		}
	case "sync":
		cmd, err = parseSync(body)
	case "locks":
		cmd, err = parseLocks(body)
	case "cluster":
		cmd, err = parseCluster(body)
	case "actor":
		cmd, err = parseActor(body)
	case "subs":
		cmd, err = parseSubs(body)
	case "log":
		cmd, err = parseLogCommand(body)
	default:
		return nil, decodeError(data, unknownCommand(tag))
	}

	if err != nil {
		return nil, decodeError(data, err)
	}

	return cmd, nil
}

func parseSync(body json.RawMessage) (Command, error) {
	sub, _, err := splitVariant(body)
	if err != nil {
		return nil, fmt.Errorf("sync: %w", err)
	}

	switch sub {
	case "generate":
		return SyncGenerate{}, nil
	case "reconcile_gaps":
		return SyncReconcileGaps{}, nil
	default:
		return nil, unknownCommand("sync." + sub)
	}
}

func parseLocks(body json.RawMessage) (Command, error) {
	var raw struct {
		Top *int `json:"top"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("locks: %w", err)
	}

	if raw.Top == nil {
		return nil, fmt.Errorf("locks: missing 'top' field")
	}

	return Locks{Top: *raw.Top}, nil
}

func parseCluster(body json.RawMessage) (Command, error) {
	sub, inner, err := splitVariant(body)
	if err != nil {
		return nil, fmt.Errorf("cluster: %w", err)
	}

	switch sub {
	case "rejoin":
		return ClusterRejoin{}, nil
	case "members":
		return ClusterMembers{}, nil
	case "membership_states":
		return ClusterMembershipStates{}, nil
	case "set_id":
		var id uuid.UUID
		if err := json.Unmarshal(inner, &id); err != nil {
			return nil, fmt.Errorf("cluster.set_id: %w", err)
		}

		return ClusterSetID{ActorID: id}, nil
	default:
		return nil, unknownCommand("cluster." + sub)
	}
}

func parseActor(body json.RawMessage) (Command, error) {
	sub, inner, err := splitVariant(body)
	if err != nil {
		return nil, fmt.Errorf("actor: %w", err)
	}

	if sub != "version" {
		return nil, unknownCommand("actor." + sub)
	}

	var raw actorVersionBody
	if err := json.Unmarshal(inner, &raw); err != nil {
		return nil, fmt.Errorf("actor.version: %w", err)
	}

	return ActorVersion(raw), nil
}

func parseSubs(body json.RawMessage) (Command, error) {
	sub, inner, err := splitVariant(body)
	if err != nil {
		return nil, fmt.Errorf("subs: %w", err)
	}

	switch sub {
	case "list":
		return SubsList{}, nil
	case "info":
		var raw subsInfoBody
		if err := json.Unmarshal(inner, &raw); err != nil {
			return nil, fmt.Errorf("subs.info: %w", err)
		}

		return SubsInfo(raw), nil
	default:
		return nil, unknownCommand("subs." + sub)
	}
}

func parseLogCommand(body json.RawMessage) (Command, error) {
	sub, inner, err := splitVariant(body)
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}

	switch sub {
	case "reset":
		return LogReset{}, nil
	case "set":
		var raw struct {
			Filter *string `json:"filter"`
		}
		if err := json.Unmarshal(inner, &raw); err != nil {
			return nil, fmt.Errorf("log.set: %w", err)
		}

		if raw.Filter == nil {
			return nil, fmt.Errorf("log.set: missing 'filter' field")
		}

		return LogSet{Filter: *raw.Filter}, nil
	default:
		return nil, unknownCommand("log." + sub)
	}
}
