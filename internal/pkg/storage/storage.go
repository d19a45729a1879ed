package storage

import (
	"context"
	"io"
)

// FileStorage persists generated report exports.
type FileStorage interface {
	// Upload stores content under path and returns the cleaned path.
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Download retrieves a stored file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
