// Package kv provides the string-keyed storage that backs every persisted
// collection. Each key holds one fully serialized value; writers always
// replace the whole value. Concurrent writers to the same external store are
// not coordinated (last write wins).
package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key has no stored value.
var ErrKeyNotFound = errors.New("key not found")

// Store is a durable string-keyed byte store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
