package persistence

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// SchemaVersion is written into every record envelope. Version 0 is the bare
// JSON array written by the browser app, which is still readable.
const SchemaVersion = 1

var ErrUnsupportedSchema = errors.New("unsupported record schema version")

type envelope struct {
	SchemaVersion int             `json:"schema_version"`
	Records       json.RawMessage `json:"records"`
}

// Encode wraps records in a versioned envelope.
func Encode(records any) ([]byte, error) {
	raw, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal records: %w", err)
	}
	data, err := json.Marshal(envelope{SchemaVersion: SchemaVersion, Records: raw})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal envelope: %w", err)
	}
	return data, nil
}

// Decode unwraps an envelope (or a legacy bare array) into dest.
func Decode(data []byte, dest any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, dest); err != nil {
			return fmt.Errorf("failed to decode legacy records: %w", err)
		}
		return nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return fmt.Errorf("failed to decode envelope: %w", err)
	}
	if env.SchemaVersion > SchemaVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedSchema, env.SchemaVersion)
	}
	if len(env.Records) == 0 || string(env.Records) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Records, dest); err != nil {
		return fmt.Errorf("failed to decode records: %w", err)
	}
	return nil
}
