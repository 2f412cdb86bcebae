package postbrief

import (
	"context"
	"strings"
	"time"
)

// AvatarBaseURL is the mirror used to derive avatar images from handles.
// The URL is constructed, never fetched or validated by this package.
const AvatarBaseURL = "https://unavatar.io/x"

// Post is the structured representation of a post extracted from the
// markdown rendering of its page.
type Post struct {
	// AuthorName is the display name. Falls back to the handle without
	// the @ sigil when no name pattern is found.
	AuthorName string `json:"authorName"`

	// Handle is the @-prefixed account identifier, empty if not found.
	Handle string `json:"handle"`

	// AvatarURL is derived deterministically from Handle, not parsed.
	AvatarURL string `json:"avatarUrl"`

	// Content is the body as HTML-safe markup limited to <b> and <br />.
	// All markdown link and image syntax has been stripped or flattened.
	Content string `json:"content"`

	// Media holds embedded image/video URLs in order of appearance,
	// with known non-content URLs (emoji sprites, avatar mirrors,
	// profile thumbnails) excluded.
	Media []string `json:"media"`

	// Timestamp is the "date · time" label as found in the document,
	// empty if not found.
	Timestamp string `json:"timestamp"`
}

// AvatarURL derives the avatar image URL for a handle. The @ sigil is
// stripped; an empty handle yields an empty URL.
func AvatarURL(handle string) string {
	h := strings.TrimPrefix(handle, "@")
	if h == "" {
		return ""
	}
	return AvatarBaseURL + "/" + h
}

// Summary is a generated summary persisted to history.
type Summary struct {
	ID          string    `json:"id"`
	PostURL     string    `json:"postUrl"`
	AuthorName  string    `json:"authorName"`
	Handle      string    `json:"handle"`
	Content     string    `json:"content"`
	Media       []string  `json:"media"`
	Timestamp   string    `json:"timestamp"`
	SummaryText string    `json:"summaryText"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the summary contains invalid fields.
func (s *Summary) Validate() error {
	if s.PostURL == "" {
		return Errorf(EINVALID, "summary post URL required")
	}
	if s.SummaryText == "" {
		return Errorf(EINVALID, "summary text required")
	}
	return nil
}

// SummaryFilter represents a filter for FindSummaries.
type SummaryFilter struct {
	ID      *string `json:"id"`
	PostURL *string `json:"postUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SummaryService represents a service for managing summary history.
type SummaryService interface {
	// CreateSummary records a new summary.
	CreateSummary(ctx context.Context, summary *Summary) error

	// FindSummaryByID retrieves a summary by ID.
	// Returns ENOTFOUND if the summary does not exist.
	FindSummaryByID(ctx context.Context, id string) (*Summary, error)

	// FindSummaries retrieves summaries matching the filter, newest first.
	FindSummaries(ctx context.Context, filter SummaryFilter) ([]*Summary, error)

	// DeleteSummary permanently removes a summary.
	// Returns ENOTFOUND if the summary does not exist.
	DeleteSummary(ctx context.Context, id string) error
}
