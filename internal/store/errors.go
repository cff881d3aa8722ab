package store

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup, update or delete whose id matched no listing.
// It is a normal outcome the caller is expected to handle, not a failure of
// the store itself.
var ErrNotFound = errors.New("listing not found")

// ErrCorrupt marks a persisted payload that does not decode into a valid
// collection. The store never papers over corrupt data: treating it as an
// empty collection would let the next write destroy it.
var ErrCorrupt = errors.New("corrupt listing store")

// ValidationError reports a draft or patch that must not be persisted.
// It is always returned before any write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid listing: field %q %s", e.Field, e.Reason)
}
