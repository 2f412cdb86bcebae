// Package readability provides a postbrief.Extractor built on
// go-readability's boilerplate removal.
package readability

import (
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/mwalczyk/postbrief"
)

// Ensure Extractor implements postbrief.Extractor at compile time.
var _ postbrief.Extractor = (*Extractor)(nil)

// Extractor extracts main page content using the readability algorithm.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content with
// navigation, footers and other boilerplate removed.
func (e *Extractor) Extract(rawHTML string) (*postbrief.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, postbrief.Errorf(postbrief.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, postbrief.Errorf(postbrief.EUNAVAILABLE, "content extraction failed: %v", err)
	}

	return &postbrief.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
