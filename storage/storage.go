package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

var (
	// ErrInvalidPath is returned when a path is empty, absolute or escapes its root.
	ErrInvalidPath = errors.New("invalid path")

	// ErrNotConfigured is returned when a backend is missing required settings.
	ErrNotConfigured = errors.New("storage is not configured")
)

// BlobStorage stores uploaded objects and knows their public address.
type BlobStorage interface {
	// Upload stores the content of reader at path.
	Upload(ctx context.Context, path string, reader io.Reader, contentType string) error

	// PublicURL returns the address clients use to fetch path.
	PublicURL(path string) string
}

// Config selects and configures a backend.
type Config struct {
	Type          string // "local" or "s3"
	BaseDir       string
	PublicBaseURL string // local backend only
	S3            S3Config
}

// NewBlobStorage builds the backend named by cfg.Type.
// A backend with missing settings yields ErrNotConfigured.
func NewBlobStorage(ctx context.Context, cfg Config) (BlobStorage, error) {
	switch strings.ToLower(cfg.Type) {
	case "local":
		if cfg.BaseDir == "" {
			return nil, fmt.Errorf("%w: base_dir is required for local storage", ErrNotConfigured)
		}
		return NewLocalStorage(cfg.BaseDir, cfg.PublicBaseURL)

	case "s3":
		return NewS3Storage(ctx, cfg.S3)

	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// cleanKey normalises path into a slash separated relative key.
func cleanKey(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: path cannot be empty", ErrInvalidPath)
	}

	clean := filepath.ToSlash(filepath.Clean(path))
	if strings.HasPrefix(clean, "/") || filepath.IsAbs(path) {
		return "", fmt.Errorf("%w: absolute paths not allowed", ErrInvalidPath)
	}
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: path traversal detected", ErrInvalidPath)
	}
	return clean, nil
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
