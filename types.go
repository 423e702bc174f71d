package corroadmin

import "github.com/joeblew999/corrosion/internal/message"

// Command is one request to the admin endpoint. The set of implementations
// is closed: Ping, SyncGenerate, SyncReconcileGaps, Locks, ClusterRejoin,
// ClusterMembers, ClusterMembershipStates, ClusterSetID, ActorVersion,
// SubsList, SubsInfo, LogSet, LogReset.
type Command = message.Command

// Ping checks that the endpoint is alive.
type Ping = message.Ping

// SyncGenerate asks the node to generate its sync state.
type SyncGenerate = message.SyncGenerate

// SyncReconcileGaps asks the node to reconcile gaps in its bookkeeping.
type SyncReconcileGaps = message.SyncReconcileGaps

// Locks lists the longest-held locks.
type Locks = message.Locks

// ClusterRejoin makes the node rejoin the cluster.
type ClusterRejoin = message.ClusterRejoin

// ClusterMembers lists known cluster members.
type ClusterMembers = message.ClusterMembers

// ClusterMembershipStates dumps the membership state of every known member.
type ClusterMembershipStates = message.ClusterMembershipStates

// ClusterSetID replaces the node's actor id.
type ClusterSetID = message.ClusterSetID

// ActorVersion looks up one version of one actor's changes.
type ActorVersion = message.ActorVersion

// SubsList lists active subscriptions.
type SubsList = message.SubsList

// SubsInfo describes one subscription, selected by query hash or id.
type SubsInfo = message.SubsInfo

// LogSet replaces the node's log filter directive.
type LogSet = message.LogSet

// LogReset restores the node's configured log filter.
type LogReset = message.LogReset

// Response is one unit of a command's reply stream.
// Implementations: *LogResponse, *ErrorResponse, *SuccessResponse, *DataResponse.
type Response = message.Response

// LogResponse is a non-terminal log record from the node.
type LogResponse = message.Log

// ErrorResponse is the terminal failure of a command.
type ErrorResponse = message.Error

// SuccessResponse is the terminal success of a command.
type SuccessResponse = message.Success

// DataResponse is a non-terminal JSON payload.
type DataResponse = message.Data

// LogLevel is the severity of a LogResponse.
type LogLevel = message.LogLevel

// Log levels in ascending severity.
const (
	LogLevelTrace = message.LogLevelTrace
	LogLevelDebug = message.LogLevelDebug
	LogLevelInfo  = message.LogLevelInfo
	LogLevelWarn  = message.LogLevelWarn
	LogLevelError = message.LogLevelError
)

// ParseLogLevel parses a level name case-insensitively.
func ParseLogLevel(s string) (LogLevel, error) {
	return message.ParseLogLevel(s)
}

// EncodeCommand returns the wire JSON of cmd.
func EncodeCommand(cmd Command) ([]byte, error) {
	return message.EncodeCommand(cmd)
}

// ParseCommand decodes a command from its wire JSON.
func ParseCommand(data []byte) (Command, error) {
	return message.ParseCommand(data)
}

// EncodeResponse returns the wire JSON of r.
func EncodeResponse(r Response) ([]byte, error) {
	return message.EncodeResponse(r)
}

// ParseResponse decodes a response from its wire JSON.
func ParseResponse(data []byte) (Response, error) {
	return message.ParseResponse(data)
}
