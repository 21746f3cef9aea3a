package models

// Post represents a post-like record returned by a posts source.
// The shape mirrors the payload of the external posts API.
type Post struct {
	ID    int64    `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}
