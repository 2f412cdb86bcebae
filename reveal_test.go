package postbrief_test

import (
	"context"
	"testing"
	"time"

	"github.com/mwalczyk/postbrief"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReveal(t *testing.T) {
	t.Parallel()

	t.Run("produces growing prefixes ending with the full text", func(t *testing.T) {
		t.Parallel()

		var prefixes []string
		for p := range postbrief.Reveal(context.Background(), "abcde", time.Millisecond) {
			prefixes = append(prefixes, p)
		}

		require.NotEmpty(t, prefixes)
		assert.Equal(t, "abcde", prefixes[len(prefixes)-1])

		prev := ""
		for _, p := range prefixes {
			assert.True(t, len(p) > len(prev), "prefixes must strictly grow")
			assert.True(t, len(p) <= len("abcde"), "prefix must never exceed the source")
			assert.Equal(t, p[:len(prev)], prev, "each value must extend the previous prefix")
			prev = p
		}
	})

	t.Run("steps by runes, not bytes", func(t *testing.T) {
		t.Parallel()

		text := "ok 👉"
		var last string
		for p := range postbrief.Reveal(context.Background(), text, time.Millisecond) {
			last = p
		}

		assert.Equal(t, text, last)
	})

	t.Run("closes immediately for empty text", func(t *testing.T) {
		t.Parallel()

		_, ok := <-postbrief.Reveal(context.Background(), "", time.Millisecond)

		assert.False(t, ok)
	})

	t.Run("cancellation stops advancement without error", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		ch := postbrief.Reveal(ctx, "abcde", 50*time.Millisecond)

		first, ok := <-ch
		require.True(t, ok)
		assert.Equal(t, "a", first)

		cancel()

		var last string
		for p := range ch {
			last = p
		}
		assert.Less(t, len(last), len("abcde"), "canceled reveal must not complete")
	})
}
