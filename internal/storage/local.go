package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"autonom-backend/internal/logger"
)

// localStorage writes objects to a flat directory on disk. The stored key
// is a generated UUID plus the original extension so the file remains
// recognizable when inspected directly.
type localStorage struct {
	dir   string
	rules Rules
}

func NewLocalStorage(dir string, rules Rules) (Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &localStorage{dir: dir, rules: rules}, nil
}

func (s *localStorage) Save(ctx context.Context, fileName, mimeType string, size int64, content io.Reader) (string, error) {
	if err := s.rules.Check(size, mimeType); err != nil {
		return "", err
	}

	key := uuid.New().String() + filepath.Ext(fileName)
	path := filepath.Join(s.dir, key)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, io.LimitReader(content, s.rules.MaxSizeBytes+1))
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if written > s.rules.MaxSizeBytes {
		os.Remove(path)
		return "", ErrFileTooLarge
	}

	logger.Debug("stored upload", "key", key, "size", written, "mime_type", mimeType)
	return key, nil
}

func (s *localStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, filepath.Base(key)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to open stored object: %w", err)
	}
	return f, nil
}

func (s *localStorage) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete stored object: %w", err)
	}
	return nil
}
