package postbrief

import (
	"context"
	"sync"
)

// Credentials tracks the active API key for generation requests.
//
// The active key is sourced from exactly one of an environment-configured
// key or a user-supplied key held in the persistent store, with the
// environment key taking precedence. An authorization failure invalidates
// the active key: an environment key is cleared in memory only, a
// persisted user key is cleared from memory and evicted from the store.
type Credentials struct {
	mu     sync.Mutex
	envKey string
	active string
	store  KeyStore
}

// NewCredentials creates a Credentials with the environment-configured key
// (may be empty) and the persistent store.
func NewCredentials(envKey string, store KeyStore) *Credentials {
	return &Credentials{envKey: envKey, store: store}
}

// Resolve determines the initial active key: the environment key if
// non-empty, else the persisted user key, else empty.
func (c *Credentials) Resolve(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.envKey != "" {
		c.active = c.envKey
		return nil
	}

	key, err := c.store.Get(ctx)
	if err != nil {
		return err
	}
	c.active = key
	return nil
}

// ActiveKey returns the currently active key, or an empty string when the
// user must supply one.
func (c *Credentials) ActiveKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// SaveUserKey persists and activates a user-supplied key.
// An empty key is rejected.
func (c *Credentials) SaveUserKey(ctx context.Context, key string) error {
	if key == "" {
		return Errorf(EINVALID, "API key required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Set(ctx, key); err != nil {
		return err
	}
	c.active = key
	return nil
}

// Invalidate clears the active key after an authorization failure. When
// the rejected key came from the persistent store it is also evicted, so
// a later Resolve cannot return it again. The environment key is never
// written anywhere, so it is only cleared in memory.
func (c *Credentials) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	fromEnv := c.envKey != "" && c.active == c.envKey
	c.active = ""

	if fromEnv {
		return nil
	}
	return c.store.Remove(ctx)
}
