package postbrief

import (
	"fmt"
	"strings"
)

// promptTemplate is the fixed five-point instruction set sent with every
// request. %s is the interpolated post description.
const promptTemplate = `Here is a tweet: %s 👉 Your tasks:
1. Summarize in **bullet points**
2. Explain in simple terms
3. Highlight main topic (crypto, tech, finance, etc)
4. Add extra insights if relevant
5. Format with **bold headings** + bullet points`

// BuildPrompt builds the single user message for a summary request from
// the post's fields. Media is included only when opts.IncludeMedia is set.
func BuildPrompt(post Post, opts SummarizeOptions) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "author: %s,\n", post.AuthorName)
	if opts.IncludeMedia {
		fmt.Fprintf(&sb, "media: %s,\n", strings.Join(post.Media, ", "))
	}
	fmt.Fprintf(&sb, "content: %s,\n", post.Content)
	fmt.Fprintf(&sb, "twitterHandle: %s,\n", post.Handle)
	fmt.Fprintf(&sb, "timeStamps: %s", post.Timestamp)

	return fmt.Sprintf(promptTemplate, sb.String())
}
