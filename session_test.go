package postbrief_test

import (
	"context"
	"testing"
	"time"

	"github.com/mwalczyk/postbrief"
	"github.com/mwalczyk/postbrief/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeCredentials(t *testing.T, envKey, storedKey string) (*postbrief.Credentials, *mock.MemoryKeyStore) {
	t.Helper()
	store := &mock.MemoryKeyStore{Key: storedKey}
	creds := postbrief.NewCredentials(envKey, store)
	require.NoError(t, creds.Resolve(context.Background()))
	return creds, store
}

func TestSession_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("returns the generated text", func(t *testing.T) {
		t.Parallel()

		creds, _ := activeCredentials(t, "E", "")
		summarizer := &mock.Summarizer{
			SummarizeFn: func(context.Context, postbrief.Post, postbrief.SummarizeOptions) (string, error) {
				return "a summary", nil
			},
		}
		session := postbrief.NewSession(summarizer, creds)

		text, err := session.Summarize(context.Background(), postbrief.Post{}, postbrief.SummarizeOptions{})

		require.NoError(t, err)
		assert.Equal(t, "a summary", text)
	})

	t.Run("missing credential short-circuits without a network call", func(t *testing.T) {
		t.Parallel()

		creds, _ := activeCredentials(t, "", "")
		calls := 0
		summarizer := &mock.Summarizer{
			SummarizeFn: func(context.Context, postbrief.Post, postbrief.SummarizeOptions) (string, error) {
				calls++
				return "", nil
			},
		}
		session := postbrief.NewSession(summarizer, creds)

		_, err := session.Summarize(context.Background(), postbrief.Post{}, postbrief.SummarizeOptions{})

		require.Error(t, err)
		assert.Equal(t, postbrief.ENOCREDENTIAL, postbrief.ErrorCode(err))
		assert.Equal(t, postbrief.MissingCredentialMessage, postbrief.ErrorMessage(err))
		assert.Zero(t, calls, "no request may be sent without a key")
	})

	t.Run("auth rejection evicts the persisted key", func(t *testing.T) {
		t.Parallel()

		creds, store := activeCredentials(t, "", "U")
		summarizer := &mock.Summarizer{
			SummarizeFn: func(context.Context, postbrief.Post, postbrief.SummarizeOptions) (string, error) {
				return "", postbrief.Errorf(postbrief.EUNAUTHORIZED, "API key invalid or expired")
			},
		}
		session := postbrief.NewSession(summarizer, creds)

		_, err := session.Summarize(context.Background(), postbrief.Post{}, postbrief.SummarizeOptions{})

		require.Error(t, err)
		assert.Equal(t, postbrief.EUNAUTHORIZED, postbrief.ErrorCode(err))
		assert.Empty(t, creds.ActiveKey())
		assert.Empty(t, store.Key)
	})

	t.Run("auth rejection keeps the store when the env key was active", func(t *testing.T) {
		t.Parallel()

		creds, store := activeCredentials(t, "E", "U")
		summarizer := &mock.Summarizer{
			SummarizeFn: func(context.Context, postbrief.Post, postbrief.SummarizeOptions) (string, error) {
				return "", postbrief.Errorf(postbrief.EUNAUTHORIZED, "API key invalid or expired")
			},
		}
		session := postbrief.NewSession(summarizer, creds)

		_, err := session.Summarize(context.Background(), postbrief.Post{}, postbrief.SummarizeOptions{})

		require.Error(t, err)
		assert.Empty(t, creds.ActiveKey())
		assert.Equal(t, "U", store.Key)
	})

	t.Run("non-auth upstream errors pass through without eviction", func(t *testing.T) {
		t.Parallel()

		creds, store := activeCredentials(t, "", "U")
		summarizer := &mock.Summarizer{
			SummarizeFn: func(context.Context, postbrief.Post, postbrief.SummarizeOptions) (string, error) {
				return "", postbrief.Errorf(postbrief.EUPSTREAM, "API error: 500")
			},
		}
		session := postbrief.NewSession(summarizer, creds)

		_, err := session.Summarize(context.Background(), postbrief.Post{}, postbrief.SummarizeOptions{})

		require.Error(t, err)
		assert.Equal(t, postbrief.EUPSTREAM, postbrief.ErrorCode(err))
		assert.Equal(t, "U", creds.ActiveKey())
		assert.Equal(t, "U", store.Key)
	})

	t.Run("regenerate repeats the identical procedure", func(t *testing.T) {
		t.Parallel()

		creds, _ := activeCredentials(t, "E", "")
		calls := 0
		summarizer := &mock.Summarizer{
			SummarizeFn: func(context.Context, postbrief.Post, postbrief.SummarizeOptions) (string, error) {
				calls++
				return "take two", nil
			},
		}
		session := postbrief.NewSession(summarizer, creds)

		_, err := session.Summarize(context.Background(), postbrief.Post{}, postbrief.SummarizeOptions{IncludeMedia: true})
		require.NoError(t, err)
		_, err = session.Summarize(context.Background(), postbrief.Post{}, postbrief.SummarizeOptions{})
		require.NoError(t, err)

		assert.Equal(t, 2, calls, "no cached short-circuit on regenerate")
	})

	t.Run("a newer request supersedes an in-flight one", func(t *testing.T) {
		t.Parallel()

		creds, _ := activeCredentials(t, "E", "")
		inFlight := make(chan struct{})
		summarizer := &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, _ postbrief.Post, _ postbrief.SummarizeOptions) (string, error) {
				select {
				case <-inFlight:
					// Second request: return immediately.
					return "newer", nil
				default:
				}
				close(inFlight)
				// First request: block until superseded.
				<-ctx.Done()
				return "stale", ctx.Err()
			},
		}
		session := postbrief.NewSession(summarizer, creds)

		firstErr := make(chan error, 1)
		go func() {
			_, err := session.Summarize(context.Background(), postbrief.Post{}, postbrief.SummarizeOptions{})
			firstErr <- err
		}()

		<-inFlight
		text, err := session.Summarize(context.Background(), postbrief.Post{}, postbrief.SummarizeOptions{})
		require.NoError(t, err)
		assert.Equal(t, "newer", text)

		select {
		case err := <-firstErr:
			require.Error(t, err, "superseded request must not surface a result")
		case <-time.After(5 * time.Second):
			t.Fatal("superseded request did not finish")
		}
	})
}
