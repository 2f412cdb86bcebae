package postbrief_test

import (
	"testing"

	"github.com/mwalczyk/postbrief"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	post := postbrief.Post{
		AuthorName: "Alice Doe",
		Handle:     "@alicedoe",
		Content:    "<b>Big news</b> today",
		Media:      []string{"https://pbs.twimg.com/media/a.jpg", "https://pbs.twimg.com/media/b.jpg"},
		Timestamp:  "7:15 PM · Aug 15, 2025",
	}

	t.Run("interpolates all post fields", func(t *testing.T) {
		t.Parallel()

		prompt := postbrief.BuildPrompt(post, postbrief.SummarizeOptions{IncludeMedia: true})

		assert.Contains(t, prompt, "author: Alice Doe")
		assert.Contains(t, prompt, "twitterHandle: @alicedoe")
		assert.Contains(t, prompt, "content: <b>Big news</b> today")
		assert.Contains(t, prompt, "timeStamps: 7:15 PM · Aug 15, 2025")
	})

	t.Run("joins media with a comma separator", func(t *testing.T) {
		t.Parallel()

		prompt := postbrief.BuildPrompt(post, postbrief.SummarizeOptions{IncludeMedia: true})

		assert.Contains(t, prompt, "media: https://pbs.twimg.com/media/a.jpg, https://pbs.twimg.com/media/b.jpg")
	})

	t.Run("omits media when not requested", func(t *testing.T) {
		t.Parallel()

		prompt := postbrief.BuildPrompt(post, postbrief.SummarizeOptions{IncludeMedia: false})

		assert.NotContains(t, prompt, "media:")
		assert.Contains(t, prompt, "author: Alice Doe")
	})

	t.Run("carries the five-point instruction template", func(t *testing.T) {
		t.Parallel()

		prompt := postbrief.BuildPrompt(post, postbrief.SummarizeOptions{})

		assert.Contains(t, prompt, "Here is a tweet:")
		assert.Contains(t, prompt, "1. Summarize in **bullet points**")
		assert.Contains(t, prompt, "2. Explain in simple terms")
		assert.Contains(t, prompt, "3. Highlight main topic (crypto, tech, finance, etc)")
		assert.Contains(t, prompt, "4. Add extra insights if relevant")
		assert.Contains(t, prompt, "5. Format with **bold headings** + bullet points")
	})
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	t.Run("round-trips code and message", func(t *testing.T) {
		t.Parallel()

		err := postbrief.Errorf(postbrief.EUPSTREAM, "API error: %d", 502)

		assert.Equal(t, postbrief.EUPSTREAM, postbrief.ErrorCode(err))
		assert.Equal(t, "API error: 502", postbrief.ErrorMessage(err))
	})

	t.Run("classifies unknown errors as internal", func(t *testing.T) {
		t.Parallel()

		err := assert.AnError

		assert.Equal(t, postbrief.EINTERNAL, postbrief.ErrorCode(err))
		assert.Equal(t, "Internal error.", postbrief.ErrorMessage(err))
	})

	t.Run("handles nil", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, postbrief.ErrorCode(nil))
		assert.Empty(t, postbrief.ErrorMessage(nil))
	})
}
