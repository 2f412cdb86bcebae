// Package jina provides a postbrief.Renderer backed by the r.jina.ai
// rendering proxy, which converts a web page into markdown text.
package jina

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mwalczyk/postbrief"
)

// DefaultBaseURL is the rendering proxy endpoint. The post URL is
// appended as the path.
const DefaultBaseURL = "https://r.jina.ai"

// DefaultTimeout bounds a single render round trip. The proxy renders the
// page on demand, which can take well over a browser page load.
const DefaultTimeout = 30 * time.Second

// Ensure Renderer implements postbrief.Renderer at compile time.
var _ postbrief.Renderer = (*Renderer)(nil)

// Renderer fetches markdown renderings of post pages through the proxy.
type Renderer struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBaseURL overrides the proxy base URL. Used by tests to point at a
// local server.
func WithBaseURL(u string) Option {
	return func(r *Renderer) {
		r.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		r.timeout = d
	}
}

// NewRenderer creates a proxy-backed Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.client = &http.Client{Timeout: r.timeout}

	return r
}

// Render fetches the markdown document for the post URL. Any transport
// failure or non-200 status is a hard abort reported as EUNAVAILABLE.
func (r *Renderer) Render(ctx context.Context, postURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/"+strings.TrimSpace(postURL), nil)
	if err != nil {
		return "", postbrief.Errorf(postbrief.EINVALID, "invalid post URL %q", postURL)
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", postbrief.Errorf(postbrief.EUNAVAILABLE, "failed to load post: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", postbrief.Errorf(postbrief.EUNAVAILABLE, "failed to load post: proxy returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", postbrief.Errorf(postbrief.EUNAVAILABLE, "failed to load post: %v", err)
	}

	return string(body), nil
}
