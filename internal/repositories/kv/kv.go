// Package kv provides the durable key-value storage the snapshot layer
// writes to. Two backends exist: a local sqlite database (the default) and
// PostgreSQL, selected by the DSN scheme.
package kv

import "context"

// Repository is a flat key-value store for persisted records.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
