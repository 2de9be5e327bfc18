package storage

import (
	"context"
	"errors"
	"io"
)

var ErrInvalidPath = errors.New("invalid file path")

type FileStorage interface {
	// Upload writes the file under key and returns the cleaned key.
	Upload(ctx context.Context, file io.Reader, key string, contentType string) (string, error)

	// Delete removes a file. Missing files are not an error.
	Delete(ctx context.Context, key string) error

	// Exists checks if file exists
	Exists(ctx context.Context, key string) (bool, error)

	// URL returns the public URL a stored key is served from.
	URL(key string) string

	// KeyFromURL reverses URL; ok is false for URLs this storage does not serve.
	KeyFromURL(url string) (key string, ok bool)
}
