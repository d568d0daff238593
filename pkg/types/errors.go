package types

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned when a mutating operation runs without
// a resolved principal. Terminal: the operation is aborted, never retried.
var ErrNotAuthenticated = errors.New("not authenticated")

// RemoteError wraps a failure reported by the Store or ObjectStore. The
// store's own message is preserved for display; the operation that hit it
// is never retried or queued.
type RemoteError struct {
	Op         string // operation that failed: "select", "insert", "upload", ...
	Collection string // collection or bucket involved
	Err        error  // underlying store error
}

// Error returns "op collection: message".
func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Collection, e.Err)
}

// Unwrap returns the underlying store error.
func (e *RemoteError) Unwrap() error {
	return e.Err
}

// NewRemoteError wraps err with the failing operation and collection.
func NewRemoteError(op, collection string, err error) *RemoteError {
	return &RemoteError{Op: op, Collection: collection, Err: err}
}
