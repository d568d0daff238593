// Package objstore implements the binary object store over a bucket
// directory. Keys are slash-separated paths under the bucket root. The
// filesystem is abstracted with afero so tests can run against an
// in-memory filesystem.
package objstore

import (
	"fmt"
	"os"
	"path"

	"github.com/spf13/afero"

	"github.com/stride-careers/stride/pkg/types"
)

// Compile-time interface check: Bucket must implement ObjectStore.
var _ types.ObjectStore = (*Bucket)(nil)

// Bucket stores objects as files under a single root.
type Bucket struct {
	fs afero.Fs
}

// New returns a Bucket rooted at dir on the OS filesystem. The directory
// is created on first upload.
func New(dir string) *Bucket {
	return &Bucket{fs: afero.NewBasePathFs(afero.NewOsFs(), dir)}
}

// NewMem returns a Bucket on an in-memory filesystem, for tests.
func NewMem() *Bucket {
	return &Bucket{fs: afero.NewMemMapFs()}
}

// Upload stores data under key, overwriting any existing object.
func (b *Bucket) Upload(key string, data []byte) error {
	if dir := path.Dir(key); dir != "." {
		if err := b.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("upload %s: %w", key, err)
		}
	}
	if err := afero.WriteFile(b.fs, key, data, 0o644); err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}

// Download returns the payload stored under key.
// Returns ErrObjectNotFound if no object exists with that key.
func (b *Bucket) Download(key string) ([]byte, error) {
	data, err := afero.ReadFile(b.fs, key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, types.ErrObjectNotFound
		}
		return nil, fmt.Errorf("download %s: %w", key, err)
	}
	return data, nil
}

// Remove deletes the objects with the given keys. Fails on the first key
// that cannot be removed; a missing key is ErrObjectNotFound. Earlier
// removals are not undone.
func (b *Bucket) Remove(keys ...string) error {
	for _, key := range keys {
		if err := b.fs.Remove(key); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("remove %s: %w", key, types.ErrObjectNotFound)
			}
			return fmt.Errorf("remove %s: %w", key, err)
		}
	}
	return nil
}
