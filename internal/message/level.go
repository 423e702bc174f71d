package message

import (
	"fmt"
	"log/slog"
	"strings"
)

// LevelTrace is the slog level used for trace records forwarded from the endpoint.
// It sits below slog.LevelDebug, mirroring the spacing of the built-in levels.
const LevelTrace = slog.LevelDebug - 4

// LogLevel is the severity of a Log response. Values are ordered from least
// to most severe.
type LogLevel int

const (
	// LogLevelTrace is the most verbose level.
	LogLevelTrace LogLevel = iota
	// LogLevelDebug is for debugging detail.
	LogLevelDebug
	// LogLevelInfo is for routine progress.
	LogLevelInfo
	// LogLevelWarn is for recoverable problems.
	LogLevelWarn
	// LogLevelError is for failures.
	LogLevelError
)

var logLevelNames = [...]string{
	LogLevelTrace: "trace",
	LogLevelDebug: "debug",
	LogLevelInfo:  "info",
	LogLevelWarn:  "warn",
	LogLevelError: "error",
}

// AllLogLevels returns every level in ascending severity.
func AllLogLevels() []LogLevel {
	return []LogLevel{LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}
}

// ParseLogLevel parses a level name case-insensitively. "warning" is accepted
// as an alias of "warn".
func ParseLogLevel(s string) (LogLevel, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warning" {
		return LogLevelWarn, nil
	}

	for i, n := range logLevelNames {
		if n == name {
			return LogLevel(i), nil
		}
	}

	return 0, fmt.Errorf("unknown log level %q", s)
}

func (l LogLevel) valid() bool {
	return l >= LogLevelTrace && l <= LogLevelError
}

// String returns the wire name of the level.
func (l LogLevel) String() string {
	if !l.valid() {
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}

	return logLevelNames[l]
}

// SlogLevel maps the level onto the slog severity scale.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelTrace:
		return LevelTrace
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l LogLevel) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("invalid log level %d", int(l))
	}

	return []byte(logLevelNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *LogLevel) UnmarshalText(text []byte) error {
	level, err := ParseLogLevel(string(text))
	if err != nil {
		return err
	}

	*l = level

	return nil
}
