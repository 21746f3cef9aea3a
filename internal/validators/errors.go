package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrEmptyName          = errors.New("name is required")
	ErrInvalidEmail       = errors.New("email must contain exactly one '@'")
	ErrInvalidUserPayload = errors.New("invalid user payload")
	ErrSchemaUnavailable  = errors.New("schema validation facility is not available")
)
