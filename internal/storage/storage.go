// Package storage abstracts the durable key-value medium holding the
// encoded listing collection. The whole collection lives under one key;
// implementations only need to read and replace that single value.
package storage

import (
	"context"
	"errors"
)

// DefaultKey is the storage key the collection is persisted under.
const DefaultKey = "products"

// ErrUnavailable is wrapped by implementations when the underlying medium
// refuses a read or write. Callers must never treat a failed write as
// persisted.
var ErrUnavailable = errors.New("storage unavailable")

// Medium is a single durable slot for the encoded collection.
type Medium interface {
	// Read returns the stored payload. ok is false when nothing has been
	// persisted yet, which is a normal first-run state, not an error.
	Read(ctx context.Context) (data []byte, ok bool, err error)

	// Write replaces the stored payload as a whole unit.
	Write(ctx context.Context, data []byte) error

	// Erase removes the stored payload entirely.
	Erase(ctx context.Context) error
}
