// Package storage persists small key/value records (the local session) in a
// sqlite database.
package storage

import (
	"context"
)

// Repository is a key/value store with atomic-per-key operations.
// Get returns (nil, nil) when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
