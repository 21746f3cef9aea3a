package posts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	json "github.com/goccy/go-json"

	"goworkshop/models"
)

// ErrUnexpectedStatus is returned when the posts API answers with a
// non-2xx status code.
var ErrUnexpectedStatus = errors.New("posts API returned unexpected status")

// ClientConfig holds the connection settings for the posts API client.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Client fetches posts from an HTTP API. The workshop commands construct it
// to demonstrate the wiring but never call FetchPosts outside of tests.
type Client struct {
	client *resty.Client
}

// NewClient constructs a posts API client with sane fallbacks for an empty
// base URL or a non-positive timeout.
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.example.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{client: cli}
}

// BaseURL reports the configured endpoint, used by the demo to show which
// URL a real fetch would hit.
func (c *Client) BaseURL() string {
	return c.client.BaseURL
}

// FetchPosts GETs /posts and decodes the JSON array response.
func (c *Client) FetchPosts(ctx context.Context) ([]models.Post, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/posts")
	if err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	var fetched []models.Post
	if err := json.Unmarshal(resp.Body(), &fetched); err != nil {
		return nil, fmt.Errorf("decode posts response: %w", err)
	}

	return fetched, nil
}

var _ Source = (*Client)(nil)
