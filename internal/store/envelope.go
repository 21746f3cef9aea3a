// Package store reads and writes the flat JSON files the workshop commands
// produce next to themselves, and parses the item-list envelope used by the
// data handling exercises. There is no durable storage beyond these files.
package store

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// ParseItems parses a raw JSON payload expected to be an object carrying an
// "items" array and returns that array unchanged, with no per-item
// validation.
//
// The error distinguishes the failure shape: not JSON at all wraps
// ErrMalformedPayload, a structural mismatch (non-object root, missing key,
// non-array value) wraps ErrInvalidEnvelope.
func ParseItems(payload []byte) ([]any, error) {
	var parsed any
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrInvalidEnvelope)
	}

	raw, ok := obj["items"]
	if !ok {
		return nil, fmt.Errorf("%w: key 'items' is missing", ErrInvalidEnvelope)
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: 'items' is not an array", ErrInvalidEnvelope)
	}

	return items, nil
}
