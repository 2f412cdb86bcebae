package postbrief

import "context"

// KeyStore persists the user-supplied API credential.
type KeyStore interface {
	// Get returns the stored key, or an empty string if none is stored.
	Get(ctx context.Context) (string, error)

	// Set stores the key, replacing any previous value.
	Set(ctx context.Context, key string) error

	// Remove deletes the stored key. Removing an absent key is a no-op.
	Remove(ctx context.Context) error
}
