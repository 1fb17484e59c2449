package formschema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var errNotArray = errors.New("form schema: document must be a JSON array")

// Serialize encodes a canonical schema as the JSON array exchanged with the
// persistence API. A nil schema encodes as an empty array.
func Serialize(s Schema) ([]byte, error) {
	if s == nil {
		s = Schema{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("form schema: encode: %w", err)
	}
	return data, nil
}

// Parse decodes a canonical schema. An empty document yields an empty
// schema. Parse does not validate; feed the result through Normalize when
// the source is untrusted.
func Parse(data []byte) (Schema, error) {
	var s Schema
	if err := decodeArray(data, &s); err != nil {
		return nil, err
	}
	if s == nil {
		s = Schema{}
	}
	return s, nil
}

// ParseCandidates decodes an untrusted JSON array of field records.
func ParseCandidates(data []byte) ([]Candidate, error) {
	var cs []Candidate
	if err := decodeArray(data, &cs); err != nil {
		return nil, err
	}
	return cs, nil
}

func decodeArray(data []byte, v any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] != '[' {
		return errNotArray
	}
	if err := json.Unmarshal(trimmed, v); err != nil {
		return fmt.Errorf("form schema: decode: %w", err)
	}
	return nil
}
