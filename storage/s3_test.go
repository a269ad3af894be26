package storage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

func validS3Config(endpoint string) S3Config {
	return S3Config{
		Endpoint:        endpoint,
		Region:          "us-east-1",
		Bucket:          "images",
		AccessKeyID:     "test-access-key",
		SecretAccessKey: "test-secret-key",
		UsePathStyle:    true,
	}
}

func TestNewS3Storage(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*S3Config)
		wantError bool
	}{
		{
			name:   "valid config",
			mutate: func(c *S3Config) {},
		},
		{
			name:      "missing endpoint",
			mutate:    func(c *S3Config) { c.Endpoint = "" },
			wantError: true,
		},
		{
			name:      "missing secret",
			mutate:    func(c *S3Config) { c.SecretAccessKey = "" },
			wantError: true,
		},
		{
			name:      "missing bucket",
			mutate:    func(c *S3Config) { c.Bucket = "" },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validS3Config("http://localhost:9000")
			tt.mutate(&cfg)

			storage, err := NewS3Storage(context.Background(), cfg)
			if tt.wantError {
				if !errors.Is(err, ErrNotConfigured) {
					t.Errorf("expected ErrNotConfigured but got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if storage.bucket != cfg.Bucket {
				t.Errorf("bucket mismatch: got %q, want %q", storage.bucket, cfg.Bucket)
			}
		})
	}
}

func TestS3Storage_PublicURL(t *testing.T) {
	ctx := context.Background()

	storage, err := NewS3Storage(ctx, validS3Config("http://localhost:9000"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := storage.PublicURL("uploads/a.png"), "http://localhost:9000/images/uploads/a.png"; got != want {
		t.Errorf("PublicURL mismatch: got %q, want %q", got, want)
	}

	cfg := validS3Config("http://localhost:9000")
	cfg.PublicBaseURL = "https://cdn.example.com/"
	storage, err = NewS3Storage(ctx, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := storage.PublicURL("uploads/a.png"), "https://cdn.example.com/uploads/a.png"; got != want {
		t.Errorf("PublicURL mismatch: got %q, want %q", got, want)
	}
}

func TestS3Storage_UploadInvalidPath(t *testing.T) {
	storage, err := NewS3Storage(context.Background(), validS3Config("http://localhost:9000"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, path := range []string{"", "../outside.png", "/abs.png"} {
		err := storage.Upload(context.Background(), path, strings.NewReader("x"), "image/png")
		if !errors.Is(err, ErrInvalidPath) {
			t.Errorf("path %q: expected ErrInvalidPath, got %v", path, err)
		}
	}
}

// fakeS3 records the requests it receives and reports the bucket as missing.
type fakeS3 struct {
	mu       sync.Mutex
	requests []string
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	key := r.Method + " " + r.URL.Path
	if _, ok := r.URL.Query()["policy"]; ok {
		key += "?policy"
	}
	f.requests = append(f.requests, key)
	f.mu.Unlock()

	switch {
	case r.Method == http.MethodHead:
		w.WriteHeader(http.StatusNotFound)
	case r.URL.Query().Has("policy"):
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusOK)
	}
}

func (f *fakeS3) seen(req string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.requests {
		if r == req {
			return true
		}
	}
	return false
}

func TestS3Storage_EnsureBucketCreatesMissing(t *testing.T) {
	fake := &fakeS3{}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	storage, err := NewS3Storage(context.Background(), validS3Config(srv.URL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	created, err := storage.EnsureBucket(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected bucket to be created")
	}

	for _, want := range []string{"HEAD /images", "PUT /images", "PUT /images?policy"} {
		if !fake.seen(want) {
			t.Errorf("expected request %q", want)
		}
	}
}

func TestPublicReadPolicy(t *testing.T) {
	policy, err := publicReadPolicy("images")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(policy, `"Resource":"arn:aws:s3:::images/*"`) {
		t.Errorf("unexpected policy: %s", policy)
	}
	if !strings.Contains(policy, `"Action":"s3:GetObject"`) {
		t.Errorf("unexpected policy: %s", policy)
	}
}
