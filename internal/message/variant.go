package message

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/joeblew999/corrosion/internal/errors"
)

// splitVariant splits an externally tagged value into its tag and body.
// Unit variants are JSON strings and yield a nil body.
func splitVariant(data []byte) (string, json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return "", nil, fmt.Errorf("empty value")
	}

	if trimmed[0] == '"' {
		var tag string
		if err := json.Unmarshal(trimmed, &tag); err != nil {
			return "", nil, err
		}

		return tag, nil, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return "", nil, err
	}

	if len(envelope) != 1 {
		return "", nil, fmt.Errorf("expected exactly one variant tag, got %d", len(envelope))
	}

	for tag, body := range envelope {
		return tag, body, nil
	}

	return "", nil, fmt.Errorf("expected exactly one variant tag")
}

// tagged wraps body under a single variant tag.
func tagged(tag string, body any) map[string]any {
	return map[string]any{tag: body}
}

func decodeError(data []byte, err error) error {
	return &errors.DecodeError{RawData: string(data), Err: err}
}

func unknownResponse(tag string) error {
	return fmt.Errorf("%w %q", errors.ErrUnknownResponse, tag)
}

func unknownCommand(tag string) error {
	return fmt.Errorf("%w %q", errors.ErrUnknownCommand, tag)
}
