package postbrief

import (
	"regexp"
	"strings"
)

// Matches the canonical post URL shape: http(s)://[www.]x.com/<handle>/status/<id>.
// Anchored at the start only; trailing content (query params, photo
// suffixes) is permitted.
var postURLRe = regexp.MustCompile(`^https?://(www\.)?x\.com/[a-zA-Z0-9_]+/status/\d+`)

// IsValidPostURL reports whether the input looks like a post status URL.
// The input is trimmed before matching. Pure and deterministic.
func IsValidPostURL(s string) bool {
	return postURLRe.MatchString(strings.TrimSpace(s))
}
