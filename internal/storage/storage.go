package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrFileTooLarge    = errors.New("file exceeds the maximum allowed size")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrObjectNotFound  = errors.New("stored object not found")
)

// Storage persists uploaded documents. Keys are opaque and generated by
// the implementation.
type Storage interface {
	// Save streams the content to the backing store and returns the key.
	Save(ctx context.Context, fileName, mimeType string, size int64, content io.Reader) (string, error)
	// Open returns a reader for a previously saved object.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes a stored object. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
}

// Rules describes the accepted uploads.
type Rules struct {
	MaxSizeBytes int64
	AllowedTypes []string
}

// Check validates the declared size and MIME type against the rules.
func (r Rules) Check(size int64, mimeType string) error {
	if size <= 0 || size > r.MaxSizeBytes {
		return ErrFileTooLarge
	}
	for _, t := range r.AllowedTypes {
		if t == mimeType {
			return nil
		}
	}
	return ErrUnsupportedType
}
