package postbrief

import "context"

// SummarizeOptions configures a single summary request.
type SummarizeOptions struct {
	// IncludeMedia controls whether the post's media URLs are
	// interpolated into the prompt. The original UI included media on
	// the automatic request but omitted it on regenerate; rather than
	// hard-coding either behavior it is a per-request choice.
	IncludeMedia bool
}

// Summarizer produces a summary of a post via a text-generation endpoint.
type Summarizer interface {
	// Summarize sends a single-turn request built from the post and
	// returns the generated text. Classified failures: EUNAUTHORIZED
	// when the key is rejected, EUPSTREAM for other non-success
	// statuses, EEMPTY when the response carries no usable text.
	Summarize(ctx context.Context, post Post, opts SummarizeOptions) (string, error)
}
