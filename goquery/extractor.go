// Package goquery provides a postbrief.Extractor that strips page
// boilerplate with CSS selectors. It is the fallback for pages where the
// readability heuristics discard too much of a short post body.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mwalczyk/postbrief"
)

// Selectors removed from the document before content selection. These
// cover common chrome across page frameworks: scripts, styles,
// navigation, sidebars, and footers.
var boilerplateSelectors = []string{
	"script", "style", "noscript", "iframe",
	"nav", "[role=\"navigation\"]", ".nav", ".navbar", ".menu",
	"aside", ".sidebar",
	"footer", ".footer",
	"header", ".header",
}

// Selectors tried in order to locate the main content region. The whole
// body is used when none match.
var contentSelectors = []string{
	"main", "article", "[role=\"main\"]", ".content", "#content",
}

// Ensure Extractor implements postbrief.Extractor at compile time.
var _ postbrief.Extractor = (*Extractor)(nil)

// Extractor extracts main content using CSS selectors.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the HTML, removes boilerplate regions, and returns the
// first matching content region (or the stripped body when none match).
func (e *Extractor) Extract(rawHTML string) (*postbrief.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, postbrief.Errorf(postbrief.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, postbrief.Errorf(postbrief.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && og != "" {
		title = og
	}

	for _, selector := range boilerplateSelectors {
		doc.Find(selector).Remove()
	}

	content := doc.Find("body")
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}

	html, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, postbrief.Errorf(postbrief.EINTERNAL, "failed to serialize content: %v", err)
	}

	return &postbrief.ExtractResult{
		Title:       title,
		ContentHTML: html,
	}, nil
}
