// Package render composes a Fetcher, an Extractor and a Converter into a
// postbrief.Renderer that produces markdown locally, without the
// rendering proxy.
package render

import (
	"context"

	"github.com/mwalczyk/postbrief"
)

// Ensure Pipeline implements postbrief.Renderer at compile time.
var _ postbrief.Renderer = (*Pipeline)(nil)

// Pipeline renders a page to markdown in three stages: fetch raw HTML,
// extract the main content, convert it to markdown. A FallbackExtractor
// may be set for pages where the primary extractor yields nothing.
type Pipeline struct {
	Fetcher           postbrief.Fetcher
	Extractor         postbrief.Extractor
	FallbackExtractor postbrief.Extractor
	Converter         postbrief.Converter
}

// Render fetches, extracts and converts the page at postURL.
func (p *Pipeline) Render(ctx context.Context, postURL string) (string, error) {
	html, err := p.Fetcher.Fetch(ctx, postURL)
	if err != nil {
		return "", err
	}

	result, err := p.extract(html)
	if err != nil {
		return "", err
	}

	return p.Converter.Convert(result.ContentHTML)
}

// extract runs the primary extractor, falling back when it errors or
// produces an empty content region.
func (p *Pipeline) extract(html string) (*postbrief.ExtractResult, error) {
	result, err := p.Extractor.Extract(html)
	if err == nil && result.ContentHTML != "" {
		return result, nil
	}
	if p.FallbackExtractor == nil {
		if err != nil {
			return nil, err
		}
		return nil, postbrief.Errorf(postbrief.EUNAVAILABLE, "no content extracted")
	}
	return p.FallbackExtractor.Extract(html)
}
