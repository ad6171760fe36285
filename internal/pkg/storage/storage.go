package storage

import (
	"context"
	"io"
)

// Storage defines the interface for file storage operations.
// Paths are relative to the storage root.
type Storage interface {
	// Save writes content at path, creating parent directories as needed.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get returns a ReadCloser for the content stored at path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the file at path. Missing files are not an error.
	Delete(ctx context.Context, path string) error
}
