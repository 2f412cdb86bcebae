package mock

import (
	"context"

	"github.com/mwalczyk/postbrief"
)

var _ postbrief.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of postbrief.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, postURL string) (string, error)
}

func (r *Renderer) Render(ctx context.Context, postURL string) (string, error) {
	return r.RenderFn(ctx, postURL)
}
