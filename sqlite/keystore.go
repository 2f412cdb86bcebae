package sqlite

import (
	"context"
	"database/sql"

	"github.com/mwalczyk/postbrief"
)

// apiKeyName is the credentials row holding the user-supplied API key.
const apiKeyName = "api_key"

// Compile-time interface verification.
var _ postbrief.KeyStore = (*KeyStore)(nil)

// KeyStore implements postbrief.KeyStore using SQLite.
type KeyStore struct {
	db *DB
}

// NewKeyStore creates a new KeyStore.
func NewKeyStore(db *DB) *KeyStore {
	return &KeyStore{db: db}
}

// Get returns the stored key, or an empty string if none is stored.
func (s *KeyStore) Get(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM credentials WHERE name = ?", apiKeyName).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set stores the key, replacing any previous value.
func (s *KeyStore) Set(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value
	`, apiKeyName, key)
	return err
}

// Remove deletes the stored key. Removing an absent key is a no-op.
func (s *KeyStore) Remove(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM credentials WHERE name = ?", apiKeyName)
	return err
}
