package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/hairizuan-noorazman/showcase/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is the smallest prefix mimetype recognises as image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type fakeStorage struct {
	calls       int
	path        string
	contentType string
	body        []byte
	err         error
}

func (f *fakeStorage) Upload(ctx context.Context, path string, reader io.Reader, contentType string) error {
	f.calls++
	f.path = path
	f.contentType = contentType
	f.body, _ = io.ReadAll(reader)
	return f.err
}

func (f *fakeStorage) PublicURL(path string) string {
	return "https://cdn.example.com/" + path
}

func newTestService(store *fakeStorage, maxSize int64) *Service {
	svc := NewService(store, maxSize, logger.NewTestLogger())
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return svc
}

func TestIngest_Success(t *testing.T) {
	store := &fakeStorage{}
	svc := newTestService(store, 0)

	result, err := svc.Ingest(context.Background(), File{
		Filename:    "Villa.PNG",
		ContentType: "image/png",
		Size:        int64(len(pngHeader)),
		Content:     bytes.NewReader(pngHeader),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, store.calls)
	assert.Regexp(t, regexp.MustCompile(`^uploads/1700000000000-[0-9a-f]{6}\.png$`), result.Path)
	assert.Equal(t, "https://cdn.example.com/"+result.Path, result.URL)
	assert.Equal(t, "image/png", store.contentType)
	assert.Equal(t, pngHeader, store.body)
}

func TestIngest_SniffsMissingContentType(t *testing.T) {
	store := &fakeStorage{}
	svc := newTestService(store, 0)

	result, err := svc.Ingest(context.Background(), File{
		Filename:    "upload",
		ContentType: "application/octet-stream",
		Content:     bytes.NewReader(pngHeader),
	})
	require.NoError(t, err)
	assert.Equal(t, "image/png", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Path, ".png"))
}

func TestIngest_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		file    File
		maxSize int64
		wantErr error
	}{
		{
			name:    "text file",
			file:    File{Filename: "notes.txt", ContentType: "text/plain", Content: strings.NewReader("hello")},
			wantErr: ErrNotImage,
		},
		{
			name:    "sniffed text",
			file:    File{Filename: "notes", Content: strings.NewReader("just some words")},
			wantErr: ErrNotImage,
		},
		{
			name:    "declared too large",
			file:    File{Filename: "big.png", ContentType: "image/png", Size: 11 << 20, Content: bytes.NewReader(pngHeader)},
			wantErr: ErrTooLarge,
		},
		{
			name:    "content larger than declared",
			file:    File{Filename: "big.png", ContentType: "image/png", Size: 4, Content: bytes.NewReader(make([]byte, 32))},
			maxSize: 16,
			wantErr: ErrTooLarge,
		},
		{
			name:    "empty",
			file:    File{Filename: "empty.png", ContentType: "image/png", Content: bytes.NewReader(nil)},
			wantErr: ErrEmptyFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStorage{}
			svc := newTestService(store, tt.maxSize)

			_, err := svc.Ingest(context.Background(), tt.file)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, store.calls, "storage must not be called")
		})
	}
}

func TestIngest_StorageNotConfigured(t *testing.T) {
	svc := NewService(nil, 0, logger.NewTestLogger())
	assert.False(t, svc.Configured())

	_, err := svc.Ingest(context.Background(), File{Filename: "a.png", Content: bytes.NewReader(pngHeader)})
	assert.ErrorIs(t, err, ErrStorageNotConfigured)
}

func TestIngest_StorageFailure(t *testing.T) {
	store := &fakeStorage{err: errors.New("bucket not found")}
	svc := newTestService(store, 0)

	_, err := svc.Ingest(context.Background(), File{Filename: "a.png", ContentType: "image/png", Content: bytes.NewReader(pngHeader)})

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Contains(t, err.Error(), "bucket not found")
}

func TestExtension(t *testing.T) {
	tests := []struct {
		filename    string
		contentType string
		want        string
	}{
		{"photo.JPEG", "image/jpeg", "jpeg"},
		{"photo", "image/webp", "webp"},
		{"photo.", "image/x-unknown", "jpg"},
		{"photo.p$g", "image/png", "png"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, extension(tt.filename, tt.contentType))
		})
	}
}

func TestNewService_DefaultMaxSize(t *testing.T) {
	assert.Equal(t, DefaultMaxSize, NewService(&fakeStorage{}, 0, logger.NewTestLogger()).MaxSize())
	assert.EqualValues(t, 1024, NewService(&fakeStorage{}, 1024, logger.NewTestLogger()).MaxSize())
}
