package store

import "errors"

var (
	// ErrMalformedPayload is returned when a payload is not valid JSON at all.
	ErrMalformedPayload = errors.New("invalid JSON payload")

	// ErrInvalidEnvelope is returned when a payload parses as JSON but does
	// not have the expected object-with-items shape.
	ErrInvalidEnvelope = errors.New("payload must be a JSON object with an 'items' array")
)
