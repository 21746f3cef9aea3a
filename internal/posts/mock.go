package posts

import (
	"context"

	"goworkshop/models"
)

// MockSource is a Source backed by a fixed set of posts. It performs no I/O
// and never fails, which keeps the workshop runnable offline.
type MockSource struct {
}

// NewMockSource constructs the offline post source.
func NewMockSource() *MockSource {
	return &MockSource{}
}

// FetchPosts returns a fresh copy of the hard-coded posts.
func (m *MockSource) FetchPosts(_ context.Context) ([]models.Post, error) {
	return []models.Post{
		{ID: 1, Title: "Intro to Go", Tags: []string{"go", "training"}},
		{ID: 2, Title: "Using HTTP Clients", Tags: []string{"http", "go"}},
		{ID: 3, Title: "Data Handling Tips", Tags: []string{"json", "files"}},
	}, nil
}

var _ Source = (*MockSource)(nil)
