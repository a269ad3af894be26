// Package upload validates incoming images and hands them to blob storage.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/hairizuan-noorazman/showcase/logger"
	"github.com/hairizuan-noorazman/showcase/storage"
)

// DefaultMaxSize is the upload ceiling used when none is configured.
const DefaultMaxSize int64 = 10 << 20

const (
	objectPrefix = "uploads"
	suffixLength = 6
)

var (
	// ErrNotImage is returned when the content is not an image.
	ErrNotImage = errors.New("only image files are allowed")

	// ErrTooLarge is returned when the content exceeds the size ceiling.
	ErrTooLarge = errors.New("file is too large")

	// ErrEmptyFile is returned for a zero-byte upload.
	ErrEmptyFile = errors.New("file is empty")

	// ErrStorageNotConfigured is returned when no storage backend is available.
	ErrStorageNotConfigured = errors.New("storage is not configured")
)

// StorageError wraps a failure reported by the storage backend.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "storage upload failed: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// File is a single uploaded image as received from the client.
type File struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Result describes a stored image.
type Result struct {
	Path        string
	URL         string
	ContentType string
	Size        int64
}

// Service stores validated images. A nil backend leaves the service unconfigured.
type Service struct {
	store   storage.BlobStorage
	maxSize int64
	logger  logger.Logger
	now     func() time.Time
}

// NewService creates an upload service. maxSize <= 0 selects DefaultMaxSize.
func NewService(store storage.BlobStorage, maxSize int64, log logger.Logger) *Service {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Service{
		store:   store,
		maxSize: maxSize,
		logger:  log,
		now:     time.Now,
	}
}

// MaxSize returns the upload ceiling in bytes.
func (s *Service) MaxSize() int64 {
	return s.maxSize
}

// Configured reports whether a storage backend is available.
func (s *Service) Configured() bool {
	return s.store != nil
}

// Ingest validates f and stores it, returning its public URL.
// Nothing is written to storage unless every check passes.
func (s *Service) Ingest(ctx context.Context, f File) (*Result, error) {
	if s.store == nil {
		s.logger.Error(ctx, "upload rejected: storage is not configured", nil)
		return nil, ErrStorageNotConfigured
	}

	if f.Size > s.maxSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds the %d byte limit", ErrTooLarge, f.Size, s.maxSize)
	}

	// read one byte past the ceiling to catch understated sizes
	data, err := io.ReadAll(io.LimitReader(f.Content, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return nil, fmt.Errorf("%w: exceeds the %d byte limit", ErrTooLarge, s.maxSize)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	contentType := declaredType(f.ContentType)
	if contentType == "" {
		contentType = mimetype.Detect(data).String()
	}
	contentType = baseType(contentType)
	if !strings.HasPrefix(contentType, "image/") {
		s.logger.Warn(ctx, "upload rejected: not an image", map[string]interface{}{
			"filename":     f.Filename,
			"content_type": contentType,
		})
		return nil, ErrNotImage
	}

	path := s.objectPath(f.Filename, contentType)

	if err := s.store.Upload(ctx, path, bytes.NewReader(data), contentType); err != nil {
		s.logger.Error(ctx, "failed to store upload", map[string]interface{}{
			"error": err.Error(),
			"path":  path,
		})
		return nil, &StorageError{Err: err}
	}

	result := &Result{
		Path:        path,
		URL:         s.store.PublicURL(path),
		ContentType: contentType,
		Size:        int64(len(data)),
	}

	s.logger.Info(ctx, "image uploaded", map[string]interface{}{
		"path":         result.Path,
		"size":         result.Size,
		"content_type": result.ContentType,
	})

	return result, nil
}

// objectPath returns uploads/<unix-millis>-<random>.<ext>.
func (s *Service) objectPath(filename, contentType string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLength]
	name := fmt.Sprintf("%d-%s.%s", s.now().UnixMilli(), suffix, extension(filename, contentType))
	return objectPrefix + "/" + name
}

// declaredType drops content types that carry no information.
func declaredType(contentType string) string {
	ct := strings.TrimSpace(contentType)
	if ct == "" || baseType(ct) == "application/octet-stream" {
		return ""
	}
	return ct
}

func baseType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}

// extension prefers the filename's extension, then the MIME type's, then jpg.
func extension(filename, contentType string) string {
	if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), "."); isSafeExt(ext) {
		return ext
	}
	if mt := mimetype.Lookup(contentType); mt != nil {
		if ext := strings.TrimPrefix(mt.Extension(), "."); isSafeExt(ext) {
			return ext
		}
	}
	return "jpg"
}

func isSafeExt(ext string) bool {
	if ext == "" || len(ext) > 8 {
		return false
	}
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
