package mock

import (
	"context"

	"github.com/mwalczyk/postbrief"
)

var _ postbrief.KeyStore = (*KeyStore)(nil)

// KeyStore is a mock implementation of postbrief.KeyStore.
type KeyStore struct {
	GetFn    func(ctx context.Context) (string, error)
	SetFn    func(ctx context.Context, key string) error
	RemoveFn func(ctx context.Context) error
}

func (s *KeyStore) Get(ctx context.Context) (string, error) {
	return s.GetFn(ctx)
}

func (s *KeyStore) Set(ctx context.Context, key string) error {
	return s.SetFn(ctx, key)
}

func (s *KeyStore) Remove(ctx context.Context) error {
	return s.RemoveFn(ctx)
}

// MemoryKeyStore is an in-memory KeyStore for tests that need real
// get/set/remove semantics rather than per-call hooks.
type MemoryKeyStore struct {
	Key string
}

var _ postbrief.KeyStore = (*MemoryKeyStore)(nil)

func (s *MemoryKeyStore) Get(context.Context) (string, error) {
	return s.Key, nil
}

func (s *MemoryKeyStore) Set(_ context.Context, key string) error {
	s.Key = key
	return nil
}

func (s *MemoryKeyStore) Remove(context.Context) error {
	s.Key = ""
	return nil
}
