package mock

import (
	"context"

	"github.com/mwalczyk/postbrief"
)

var _ postbrief.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of postbrief.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, post postbrief.Post, opts postbrief.SummarizeOptions) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, post postbrief.Post, opts postbrief.SummarizeOptions) (string, error) {
	return s.SummarizeFn(ctx, post, opts)
}
