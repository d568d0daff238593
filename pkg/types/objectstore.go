package types

import "errors"

// DocumentsBucket is the bucket serving document binary payloads.
const DocumentsBucket = "documents"

// ObjectStore is the binary object store boundary: a flat bucket of
// payloads keyed by path strings.
type ObjectStore interface {
	// Upload stores data under key, overwriting any existing object.
	Upload(key string, data []byte) error

	// Download returns the payload stored under key.
	// Returns ErrObjectNotFound if no object exists with that key.
	Download(key string) ([]byte, error)

	// Remove deletes the objects with the given keys. Fails on the first
	// key that cannot be removed; earlier removals are not undone.
	Remove(keys ...string) error
}

// ErrObjectNotFound is returned when a bucket key resolves to nothing.
var ErrObjectNotFound = errors.New("object not found")
