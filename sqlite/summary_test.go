package sqlite_test

import (
	"context"
	"testing"

	"github.com/mwalczyk/postbrief"
	"github.com/mwalczyk/postbrief/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSummary() *postbrief.Summary {
	return &postbrief.Summary{
		PostURL:     "https://x.com/alicedoe/status/42",
		AuthorName:  "Alice Doe",
		Handle:      "@alicedoe",
		Content:     "<b>Big news</b> today",
		Media:       []string{"https://pbs.twimg.com/media/a.jpg", "https://pbs.twimg.com/media/b.jpg"},
		Timestamp:   "7:15 PM · Aug 15, 2025",
		SummaryText: "**Summary**\n- big news",
	}
}

func TestSummaryService_CreateSummary(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID, timestamp and content hash", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSummaryService(MustOpenDB(t))
		summary := newSummary()

		require.NoError(t, s.CreateSummary(context.Background(), summary))

		assert.NotEmpty(t, summary.ID)
		assert.NotEmpty(t, summary.ContentHash)
		assert.False(t, summary.CreatedAt.IsZero())
	})

	t.Run("rejects a summary without a post URL", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSummaryService(MustOpenDB(t))
		summary := newSummary()
		summary.PostURL = ""

		err := s.CreateSummary(context.Background(), summary)

		require.Error(t, err)
		assert.Equal(t, postbrief.EINVALID, postbrief.ErrorCode(err))
	})

	t.Run("rejects a summary without text", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSummaryService(MustOpenDB(t))
		summary := newSummary()
		summary.SummaryText = ""

		err := s.CreateSummary(context.Background(), summary)

		require.Error(t, err)
		assert.Equal(t, postbrief.EINVALID, postbrief.ErrorCode(err))
	})
}

func TestSummaryService_FindSummaryByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all fields including media order", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSummaryService(MustOpenDB(t))
		summary := newSummary()
		require.NoError(t, s.CreateSummary(context.Background(), summary))

		got, err := s.FindSummaryByID(context.Background(), summary.ID)

		require.NoError(t, err)
		assert.Equal(t, summary.PostURL, got.PostURL)
		assert.Equal(t, summary.AuthorName, got.AuthorName)
		assert.Equal(t, summary.Handle, got.Handle)
		assert.Equal(t, summary.Content, got.Content)
		assert.Equal(t, summary.Media, got.Media)
		assert.Equal(t, summary.Timestamp, got.Timestamp)
		assert.Equal(t, summary.SummaryText, got.SummaryText)
		assert.Equal(t, summary.ContentHash, got.ContentHash)
	})

	t.Run("round-trips an empty media list as nil", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSummaryService(MustOpenDB(t))
		summary := newSummary()
		summary.Media = nil
		require.NoError(t, s.CreateSummary(context.Background(), summary))

		got, err := s.FindSummaryByID(context.Background(), summary.ID)

		require.NoError(t, err)
		assert.Nil(t, got.Media)
	})

	t.Run("returns ENOTFOUND for an unknown ID", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSummaryService(MustOpenDB(t))

		_, err := s.FindSummaryByID(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, postbrief.ENOTFOUND, postbrief.ErrorCode(err))
	})
}

func TestSummaryService_FindSummaries(t *testing.T) {
	t.Parallel()

	t.Run("filters by post URL", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSummaryService(MustOpenDB(t))

		first := newSummary()
		require.NoError(t, s.CreateSummary(context.Background(), first))
		second := newSummary()
		second.PostURL = "https://x.com/bob/status/7"
		require.NoError(t, s.CreateSummary(context.Background(), second))

		got, err := s.FindSummaries(context.Background(), postbrief.SummaryFilter{PostURL: &second.PostURL})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, second.ID, got[0].ID)
	})

	t.Run("applies the limit", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSummaryService(MustOpenDB(t))
		for range 3 {
			require.NoError(t, s.CreateSummary(context.Background(), newSummary()))
		}

		got, err := s.FindSummaries(context.Background(), postbrief.SummaryFilter{Limit: 2})

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("returns nothing for an empty database", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSummaryService(MustOpenDB(t))

		got, err := s.FindSummaries(context.Background(), postbrief.SummaryFilter{})

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSummaryService_DeleteSummary(t *testing.T) {
	t.Parallel()

	t.Run("removes the summary", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSummaryService(MustOpenDB(t))
		summary := newSummary()
		require.NoError(t, s.CreateSummary(context.Background(), summary))

		require.NoError(t, s.DeleteSummary(context.Background(), summary.ID))

		_, err := s.FindSummaryByID(context.Background(), summary.ID)
		assert.Equal(t, postbrief.ENOTFOUND, postbrief.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for an unknown ID", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSummaryService(MustOpenDB(t))

		err := s.DeleteSummary(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, postbrief.ENOTFOUND, postbrief.ErrorCode(err))
	})
}
