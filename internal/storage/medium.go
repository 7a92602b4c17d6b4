package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Medium when the key has never been
// written. The Store treats it as an empty collection.
var ErrNotFound = errors.New("key not found")

// ErrUnavailable wraps any medium or serialization failure surfaced by
// the Store. Callers check it with errors.Is.
var ErrUnavailable = errors.New("storage unavailable")

// Medium is a string-only key-value slot. Collections are serialized
// whole on every access; the medium never sees partial updates.
type Medium interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
