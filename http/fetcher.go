// Package http provides an HTTP-based implementation of postbrief.Fetcher
// for retrieving raw page HTML in the local render pipeline.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/mwalczyk/postbrief"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements postbrief.Fetcher at compile time.
var _ postbrief.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page HTML with plain HTTP requests. It does not
// execute JavaScript, so it only works for statically served pages and
// mirrors.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{Timeout: f.timeout}

	return f
}

// Fetch retrieves the page body at the given URL. Failures are reported
// as EUNAVAILABLE so the caller can surface a "failed to load" state.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", postbrief.Errorf(postbrief.EINVALID, "invalid URL %q", url)
	}
	req.Header.Set("User-Agent", "postbrief/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", postbrief.Errorf(postbrief.EUNAVAILABLE, "failed to load %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", postbrief.Errorf(postbrief.EUNAVAILABLE, "failed to load %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", postbrief.Errorf(postbrief.EUNAVAILABLE, "failed to read %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. No-op for the plain HTTP client.
func (f *Fetcher) Close() error {
	return nil
}
