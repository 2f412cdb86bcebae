package postbrief

import "context"

// Renderer retrieves the markdown rendering of a post page.
type Renderer interface {
	// Render fetches and returns the markdown document for the post URL.
	// A transport failure or non-success status is returned as
	// EUNAVAILABLE; no partial document is ever produced.
	Render(ctx context.Context, postURL string) (markdown string, err error)
}
