package demo

import "context"

// contextKey is a private type for context keys. A dedicated type prevents
// collisions with string keys used by other packages.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// RunIDCtxKey is the key under which the runner stores the run identifier.
var RunIDCtxKey = contextKey("runID")

// RunIDFromContext retrieves the run identifier set by Runner.Run.
// ok is false when the context does not carry one.
func RunIDFromContext(ctx context.Context) (string, bool) {
	runID, ok := ctx.Value(RunIDCtxKey).(string)
	return runID, ok
}
