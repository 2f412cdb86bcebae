package postbrief

import (
	"regexp"
	"strings"
)

// Patterns targeting the markdown export format produced by the rendering
// proxy. Parsing is best-effort: a pattern that fails to match degrades the
// corresponding field to its zero value, never an error.
var (
	// Author display name: a markdown link whose label is the name
	// followed by an inline avatar badge image, targeting the profile URL.
	authorNameRe = regexp.MustCompile(`\[(.*?) !\[.*?\]\(.*?\)\]\(https://x\.com/[a-zA-Z0-9_]+\)`)

	// Self-referential handle link [@handle](https://x.com/handle).
	// RE2 has no backreferences, so both the label handle and the target
	// path segment are captured and compared for equality.
	handleRe = regexp.MustCompile(`\[@([a-zA-Z0-9_]+)\]\(https://x\.com/([a-zA-Z0-9_]+)\)`)

	// Body region: everything between the Conversation marker and the
	// first trailing paragraph that begins with a digit.
	bodyRe = regexp.MustCompile(`(?s)Conversation.*?\n\n(.*?)\n\n\d`)

	// Markdown image reference; group 1 is the target URL.
	imageRe = regexp.MustCompile(`!\[.*?\]\((.*?)\)`)

	// Markdown link with a non-empty label; flattened to the label.
	linkRe = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)

	// Empty-label link remnant, removed entirely.
	emptyLinkRe = regexp.MustCompile(`\[\]\([^)]+\)`)

	boldRe         = regexp.MustCompile(`\*\*(.*?)\*\*`)
	trailingBrRe   = regexp.MustCompile(`(<br\s*/?>)+$`)
	timestampRe    = regexp.MustCompile(`\[(.*?) · (.*?)\]\(`)
	mediaNoiseList = []string{"abs-0.twimg.com/emoji", "unavatar.io", "profile_images"}
)

// Author holds the author fields extracted from a markdown document.
type Author struct {
	Name   string
	Handle string
}

// Body holds the body fields extracted from a markdown document.
type Body struct {
	Content   string
	Timestamp string
	Media     []string
}

// ParseAuthor extracts the author display name and @-prefixed handle from
// the markdown document. When the name pattern fails but the handle is
// found, the name falls back to the handle without its sigil.
func ParseAuthor(md string) Author {
	var a Author

	if m := authorNameRe.FindStringSubmatch(md); m != nil {
		a.Name = strings.TrimSpace(m[1])
	}

	for _, m := range handleRe.FindAllStringSubmatch(md, -1) {
		if m[1] == m[2] {
			a.Handle = "@" + m[1]
			break
		}
	}

	if a.Name == "" {
		a.Name = strings.TrimPrefix(a.Handle, "@")
	}

	return a
}

// ParseBody extracts the post body, timestamp and media list from the
// markdown document.
func ParseBody(md string) Body {
	var b Body

	if section, ok := bodySection(md); ok {
		b.Media = extractMedia(section)
		b.Content = sanitizeContent(section)
	}

	if m := timestampRe.FindStringSubmatch(md); m != nil {
		b.Timestamp = m[1] + " · " + m[2]
	}

	return b
}

// ParsePost assembles a full Post from the markdown document.
func ParsePost(md string) Post {
	author := ParseAuthor(md)
	body := ParseBody(md)

	return Post{
		AuthorName: author.Name,
		Handle:     author.Handle,
		AvatarURL:  AvatarURL(author.Handle),
		Content:    body.Content,
		Media:      body.Media,
		Timestamp:  body.Timestamp,
	}
}

// bodySection returns the document region holding the post body: the text
// after the literal Conversation marker, up to the trailing paragraph that
// begins with a digit (the engagement-metrics block).
//
// The digit-paragraph stop rule is a heuristic coupled to the rendering
// proxy's formatting of trailing metrics. It lives only here so a change
// in the source format needs a change in one place.
func bodySection(md string) (string, bool) {
	m := bodyRe.FindStringSubmatch(md)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// extractMedia collects image targets from the section in order of
// appearance, dropping known non-content URLs.
func extractMedia(section string) []string {
	var media []string
	for _, m := range imageRe.FindAllStringSubmatch(section, -1) {
		if isMediaNoise(m[1]) {
			continue
		}
		media = append(media, m[1])
	}
	return media
}

// isMediaNoise reports whether the URL matches a known non-content
// pattern: emoji sprites, the avatar mirror, or profile thumbnails.
func isMediaNoise(url string) bool {
	for _, pattern := range mediaNoiseList {
		if strings.Contains(url, pattern) {
			return true
		}
	}
	return false
}

// sanitizeContent reduces the markdown body to display markup containing
// only <b> tags and <br /> line breaks. Image syntax is removed, links are
// flattened to their labels, and trailing line breaks are stripped.
func sanitizeContent(section string) string {
	s := imageRe.ReplaceAllString(section, "")
	s = linkRe.ReplaceAllString(s, "$1")
	s = emptyLinkRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = boldRe.ReplaceAllString(s, "<b>$1</b>")
	s = strings.ReplaceAll(s, "\n", "<br />")
	s = trailingBrRe.ReplaceAllString(s, "")
	return s
}
