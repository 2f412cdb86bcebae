package postbrief

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRevealInterval is the minimum delay between reveal steps.
const DefaultRevealInterval = 8 * time.Millisecond

// Reveal produces a finite sequence of strictly growing prefixes of text,
// one rune per step, paced by interval. The channel is closed after the
// full text has been sent or the context is canceled; cancellation stops
// advancement without error. Purely presentational: when allowed to
// finish, the last value equals text.
func Reveal(ctx context.Context, text string, interval time.Duration) <-chan string {
	if interval <= 0 {
		interval = DefaultRevealInterval
	}

	ch := make(chan string)
	limiter := rate.NewLimiter(rate.Every(interval), 1)

	go func() {
		defer close(ch)

		runes := []rune(text)
		for i := 1; i <= len(runes); i++ {
			if err := limiter.Wait(ctx); err != nil {
				return
			}
			select {
			case ch <- string(runes[:i]):
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}
