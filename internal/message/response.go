package message

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Response is one unit of the reply stream for a command.
// The set of implementations is closed; see the package documentation.
type Response interface {
	// ResponseType returns the wire tag of the variant.
	ResponseType() string
	// Terminal reports whether the response ends the reply sequence.
	Terminal() bool

	isResponse()
}

// Compile-time verification that all response types implement Response.
var (
	_ Response = (*Log)(nil)
	_ Response = (*Error)(nil)
	_ Response = (*Success)(nil)
	_ Response = (*Data)(nil)
)

const (
	responseTagLog     = "log"
	responseTagError   = "error"
	responseTagSuccess = "success"
	responseTagData    = "json"
)

// timestampLayouts are tried in order when decoding a Log timestamp. The
// second and third cover the human-readable offset date-time form some
// endpoints emit ("2024-01-02 03:04:05.5 +00:00:00").
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999 -07:00:00",
	"2006-01-02 15:04:05.999999999 -07:00",
}

// Log is a non-terminal progress notification from the endpoint.
type Log struct {
	Level     LogLevel
	Message   string
	Timestamp time.Time
}

// ResponseType implements the Response interface.
func (r *Log) ResponseType() string { return responseTagLog }

// Terminal implements the Response interface.
func (r *Log) Terminal() bool { return false }

func (r *Log) isResponse() {}

type logBody struct {
	Level LogLevel `json:"level"`
	Msg   string   `json:"msg"`
	TS    string   `json:"ts"`
}

// MarshalJSON implements json.Marshaler.
func (r *Log) MarshalJSON() ([]byte, error) {
	return json.Marshal(tagged(responseTagLog, logBody{
		Level: r.Level,
		Msg:   r.Message,
		TS:    r.Timestamp.Format(time.RFC3339Nano),
	}))
}

// Error is the terminal failure notification for a command.
type Error struct {
	Message string
}

// ResponseType implements the Response interface.
func (r *Error) ResponseType() string { return responseTagError }

// Terminal implements the Response interface.
func (r *Error) Terminal() bool { return true }

func (r *Error) isResponse() {}

type errorBody struct {
	Msg string `json:"msg"`
}

// MarshalJSON implements json.Marshaler.
func (r *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(tagged(responseTagError, errorBody{Msg: r.Message}))
}

// Success is the terminal success notification for a command.
type Success struct{}

// ResponseType implements the Response interface.
func (r *Success) ResponseType() string { return responseTagSuccess }

// Terminal implements the Response interface.
func (r *Success) Terminal() bool { return true }

func (r *Success) isResponse() {}

// MarshalJSON implements json.Marshaler.
func (r *Success) MarshalJSON() ([]byte, error) {
	return json.Marshal(responseTagSuccess)
}

// Data is a non-terminal side-channel payload, such as query results.
// Value holds the JSON exactly as received.
type Data struct {
	Value json.RawMessage
}

// ResponseType implements the Response interface.
func (r *Data) ResponseType() string { return responseTagData }

// Terminal implements the Response interface.
func (r *Data) Terminal() bool { return false }

func (r *Data) isResponse() {}

// MarshalJSON implements json.Marshaler.
func (r *Data) MarshalJSON() ([]byte, error) {
	value := r.Value
	if len(value) == 0 {
		value = json.RawMessage("null")
	}

	return json.Marshal(tagged(responseTagData, value))
}

// NewData builds a Data response from any JSON-marshalable value.
func NewData(v any) (*Data, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal data: %w", err)
	}

	return &Data{Value: raw}, nil
}

// EncodeResponse returns the wire JSON of r.
func EncodeResponse(r Response) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("encode response: nil response")
	}

	return json.Marshal(r)
}

// ParseResponse decodes one response from its wire JSON.
//
// Returns *errors.DecodeError for malformed JSON, and a DecodeError wrapping
// errors.ErrUnknownResponse for tags outside the known variant set.
func ParseResponse(data []byte) (Response, error) {
	tag, body, err := splitVariant(data)
	if err != nil {
		return nil, decodeError(data, err)
	}

	var resp Response

	switch tag {
	case responseTagSuccess:
		resp, err = parseSuccess(body)
	case responseTagLog:
		resp, err = parseLog(body)
	case responseTagError:
		resp, err = parseError(body)
	case responseTagData:
		resp, err = parseData(body)
	default:
		return nil, decodeError(data, unknownResponse(tag))
	}

	if err != nil {
		return nil, decodeError(data, err)
	}

	return resp, nil
}

func parseSuccess(body json.RawMessage) (*Success, error) {
	if body != nil && !isNull(body) {
		return nil, fmt.Errorf("success: unexpected payload")
	}

	return &Success{}, nil
}

func parseLog(body json.RawMessage) (*Log, error) {
	if body == nil {
		return nil, fmt.Errorf("log: missing body")
	}

	var raw struct {
		Level *LogLevel `json:"level"`
		Msg   *string   `json:"msg"`
		TS    string    `json:"ts"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}

	if raw.Level == nil {
		return nil, fmt.Errorf("log: missing 'level' field")
	}

	if raw.Msg == nil {
		return nil, fmt.Errorf("log: missing 'msg' field")
	}

	ts, err := parseTimestamp(raw.TS)
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}

	return &Log{Level: *raw.Level, Message: *raw.Msg, Timestamp: ts}, nil
}

func parseError(body json.RawMessage) (*Error, error) {
	if body == nil {
		return nil, fmt.Errorf("error: missing body")
	}

	var raw struct {
		Msg *string `json:"msg"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("error: %w", err)
	}

	if raw.Msg == nil {
		return nil, fmt.Errorf("error: missing 'msg' field")
	}

	return &Error{Message: *raw.Msg}, nil
}

func parseData(body json.RawMessage) (*Data, error) {
	if body == nil {
		return nil, fmt.Errorf("json: missing body")
	}

	var compacted bytes.Buffer
	if err := json.Compact(&compacted, body); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}

	return &Data{Value: json.RawMessage(compacted.Bytes())}, nil
}

// parseTimestamp accepts an empty string as the zero time.
func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	var firstErr error

	for _, layout := range timestampLayouts {
		ts, err := time.Parse(layout, s)
		if err == nil {
			return ts, nil
		}

		if firstErr == nil {
			firstErr = err
		}
	}

	return time.Time{}, fmt.Errorf("invalid 'ts' field: %w", firstErr)
}

func isNull(body json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(body), []byte("null"))
}
