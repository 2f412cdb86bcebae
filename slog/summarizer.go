package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mwalczyk/postbrief"
)

// Ensure LoggingSummarizer implements postbrief.Summarizer.
var _ postbrief.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with timing and outcome logging.
// The prompt and the key are never logged.
type LoggingSummarizer struct {
	next   postbrief.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next postbrief.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the result.
func (s *LoggingSummarizer) Summarize(ctx context.Context, post postbrief.Post, opts postbrief.SummarizeOptions) (string, error) {
	begin := time.Now()
	text, err := s.next.Summarize(ctx, post, opts)
	if err != nil {
		s.logger.Error("summary request failed",
			"handle", post.Handle,
			"code", postbrief.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return "", err
	}
	s.logger.Info("summary generated",
		"handle", post.Handle,
		"media", opts.IncludeMedia,
		"chars", len(text),
		"duration", time.Since(begin),
	)
	return text, nil
}
