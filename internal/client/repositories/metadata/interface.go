// Package metadata is the key/value table backing the client's persisted
// storage: the bearer credential and the serialized identity record.
package metadata

import (
	"context"
	"errors"
)

var ErrEmptyKey = errors.New("metadata key is empty")

// Repository stores opaque values by key. Get of a missing key returns
// (nil, nil).
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
