// SPDX-License-Identifier: Apache-2.0

// Package validators provides input validation for the workshop's domain
// records.
//
// Two layers coexist:
//   - Validator: a generic interface for validating already-constructed
//     values, with optional field-level scoping.
//   - UserSchema: a goskema-backed schema facility that validates raw JSON
//     payloads and converts them into internal records. It is an external
//     collaborator; services receive it injected and must treat a nil
//     schema as "facility not available", not as a programming error.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input
// values. Implementations may perform structural validation, semantic
// checks, cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
