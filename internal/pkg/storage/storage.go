// Package storage abstracts where generated documents and uploaded
// attachments live.
package storage

import (
	"context"
	"io"
)

type FileStorage interface {
	// Upload stores the file and returns the path it can be fetched by.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download opens a stored file for reading.
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a stored file. Missing files are not an error.
	Delete(ctx context.Context, path string) error
}
