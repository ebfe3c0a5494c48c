package services

import (
	"context"
	"io"
)

// BlobStore persists raw file bytes under opaque, collision-proof keys.
// Keys are generated by the store, never derived from user input.
type BlobStore interface {
	// Put writes the content and returns the generated key.
	Put(ctx context.Context, content io.Reader, size int64, contentType string) (string, error)

	// Get returns a stream of the stored bytes, or ErrNotFound.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the blob. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
