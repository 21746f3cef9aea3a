// Package posts provides the post feed collaborators for the data handling
// command: a hard-coded in-memory source and a real HTTP client. The
// commands always wire the mock so no network call is ever issued; the HTTP
// client exists to show the typical client pattern and is exercised only by
// tests.
package posts

import (
	"context"

	"goworkshop/models"
)

// Source yields post records. Callers depend on this interface and do not
// care whether the posts come from memory or over the wire.
type Source interface {
	FetchPosts(ctx context.Context) ([]models.Post, error)
}
