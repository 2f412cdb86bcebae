// Package slog provides log/slog-based logging decorators for postbrief
// services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mwalczyk/postbrief"
)

// Ensure LoggingRenderer implements postbrief.Renderer.
var _ postbrief.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with timing and outcome logging.
type LoggingRenderer struct {
	next   postbrief.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next postbrief.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render delegates to the wrapped renderer and logs the result.
func (r *LoggingRenderer) Render(ctx context.Context, postURL string) (string, error) {
	begin := time.Now()
	md, err := r.next.Render(ctx, postURL)
	if err != nil {
		r.logger.Error("render failed",
			"url", postURL,
			"code", postbrief.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return "", err
	}
	r.logger.Info("rendered post page",
		"url", postURL,
		"bytes", len(md),
		"duration", time.Since(begin),
	)
	return md, nil
}
