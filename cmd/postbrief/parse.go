package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mwalczyk/postbrief"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	if !postbrief.IsValidPostURL(c.URL) {
		fmt.Fprintln(deps.Stderr, invalidURLMessage)
		return postbrief.Errorf(postbrief.EINVALID, "%s", invalidURLMessage)
	}
	url := strings.TrimSpace(c.URL)

	renderer := deps.Renderer
	if c.Local {
		renderer = deps.LocalRenderer
	}

	md, err := renderer.Render(deps.Ctx, url)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postbrief.ErrorMessage(err))
		return err
	}

	post := postbrief.ParsePost(md)

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(post)
	}

	fmt.Fprintf(deps.Stdout, "Author:    %s\n", post.AuthorName)
	fmt.Fprintf(deps.Stdout, "Handle:    %s\n", post.Handle)
	fmt.Fprintf(deps.Stdout, "Avatar:    %s\n", post.AvatarURL)
	fmt.Fprintf(deps.Stdout, "Timestamp: %s\n", post.Timestamp)
	fmt.Fprintf(deps.Stdout, "Content:   %s\n", post.Content)
	for _, m := range post.Media {
		fmt.Fprintf(deps.Stdout, "Media:     %s\n", m)
	}

	return nil
}
