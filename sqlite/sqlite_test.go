package sqlite_test

import (
	"testing"

	"github.com/mwalczyk/postbrief/sqlite"
	"github.com/stretchr/testify/require"
)

// MustOpenDB returns an open in-memory database that is closed when the
// test finishes.
func MustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("opens an in-memory database", func(t *testing.T) {
		t.Parallel()

		MustOpenDB(t)
	})

	t.Run("opens a file database and recreates the schema idempotently", func(t *testing.T) {
		t.Parallel()

		path := t.TempDir() + "/postbrief.db"

		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		require.NoError(t, db.Close())

		db = sqlite.NewDB(path)
		require.NoError(t, db.Open())
		require.NoError(t, db.Close())
	})
}
