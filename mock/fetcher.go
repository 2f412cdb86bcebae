package mock

import (
	"context"

	"github.com/mwalczyk/postbrief"
)

var _ postbrief.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of postbrief.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ postbrief.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of postbrief.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*postbrief.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*postbrief.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ postbrief.Converter = (*Converter)(nil)

// Converter is a mock implementation of postbrief.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
