package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps objects on the local filesystem and serves them over HTTP.
type LocalStorage struct {
	baseDir       string
	publicBaseURL string
}

// NewLocalStorage creates the storage rooted at baseDir, creating it if needed.
// Public URLs are publicBaseURL joined with the object path.
func NewLocalStorage(baseDir, publicBaseURL string) (*LocalStorage, error) {
	baseDir = filepath.Clean(baseDir)
	if baseDir == "" || baseDir == "." {
		return nil, fmt.Errorf("%w: base directory cannot be empty", ErrInvalidPath)
	}

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	return &LocalStorage{
		baseDir:       baseDir,
		publicBaseURL: publicBaseURL,
	}, nil
}

// Upload writes the content of reader to path under the base directory.
func (s *LocalStorage) Upload(ctx context.Context, path string, reader io.Reader, contentType string) error {
	fullPath, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		os.Remove(fullPath)
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// PublicURL returns the configured base URL joined with path.
func (s *LocalStorage) PublicURL(path string) string {
	key, err := cleanKey(path)
	if err != nil {
		key = path
	}
	if s.publicBaseURL == "" {
		return "/" + key
	}
	return joinURL(s.publicBaseURL, key)
}

// Handler serves stored objects. Mounted at /uploads/, a request for
// /uploads/x.jpg reads <baseDir>/uploads/x.jpg.
func (s *LocalStorage) Handler() http.Handler {
	return http.FileServer(http.Dir(s.baseDir))
}

func (s *LocalStorage) resolve(path string) (string, error) {
	key, err := cleanKey(path)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(key))
	rel, err := filepath.Rel(s.baseDir, fullPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%w: path traversal detected", ErrInvalidPath)
	}
	return fullPath, nil
}
