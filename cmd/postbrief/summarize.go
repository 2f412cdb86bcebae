package main

import (
	"fmt"
	"strings"

	"github.com/mwalczyk/postbrief"
)

// invalidURLMessage mirrors the inline validation text of the UI.
const invalidURLMessage = "Please enter a valid X/Tweet URL."

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	if !postbrief.IsValidPostURL(c.URL) {
		fmt.Fprintln(deps.Stderr, invalidURLMessage)
		return postbrief.Errorf(postbrief.EINVALID, "%s", invalidURLMessage)
	}
	url := strings.TrimSpace(c.URL)

	if c.Key != "" {
		if err := deps.Credentials.SaveUserKey(deps.Ctx, c.Key); err != nil {
			return err
		}
	}

	md, err := c.render(deps, url)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postbrief.ErrorMessage(err))
		return err
	}

	post := postbrief.ParsePost(md)

	text, err := deps.Session.Summarize(deps.Ctx, post, postbrief.SummarizeOptions{
		IncludeMedia: c.Media,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postbrief.ErrorMessage(err))
		switch postbrief.ErrorCode(err) {
		case postbrief.ENOCREDENTIAL:
			fmt.Fprintln(deps.Stderr, "Hint: Run 'postbrief key set <key>' or set FIREWORKS_API_KEY. Get a key at https://app.fireworks.ai/settings/users/api-keys")
		case postbrief.EUNAUTHORIZED:
			fmt.Fprintln(deps.Stderr, "Hint: The key was rejected and has been cleared. Run 'postbrief key set <key>' with a valid key.")
		}
		return err
	}

	c.display(deps, text)

	if !c.NoSave {
		summary := &postbrief.Summary{
			PostURL:     url,
			AuthorName:  post.AuthorName,
			Handle:      post.Handle,
			Content:     post.Content,
			Media:       post.Media,
			Timestamp:   post.Timestamp,
			SummaryText: text,
		}
		if err := deps.Summaries.CreateSummary(deps.Ctx, summary); err != nil {
			// History is a convenience; the summary was already shown.
			fmt.Fprintf(deps.Stderr, "warning: failed to record summary: %s\n", postbrief.ErrorMessage(err))
		}
	}

	return nil
}

// render resolves the markdown document per the --local/--fallback flags.
func (c *SummarizeCmd) render(deps *Dependencies, url string) (string, error) {
	if c.Local {
		return deps.LocalRenderer.Render(deps.Ctx, url)
	}

	md, err := deps.Renderer.Render(deps.Ctx, url)
	if err != nil && c.Fallback {
		return deps.LocalRenderer.Render(deps.Ctx, url)
	}
	return md, err
}

// display writes the summary to stdout, progressively unless --no-reveal.
func (c *SummarizeCmd) display(deps *Dependencies, text string) {
	if c.NoReveal {
		fmt.Fprintln(deps.Stdout, text)
		return
	}

	prev := ""
	for prefix := range postbrief.Reveal(deps.Ctx, text, c.Interval) {
		fmt.Fprint(deps.Stdout, strings.TrimPrefix(prefix, prev))
		prev = prefix
	}
	fmt.Fprintln(deps.Stdout)
}
