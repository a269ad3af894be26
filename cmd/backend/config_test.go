package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hairizuan-noorazman/showcase/database"
	"github.com/hairizuan-noorazman/showcase/storage"
	"github.com/hairizuan-noorazman/showcase/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, database.DriverPostgres, cfg.Database.Driver)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, upload.DefaultMaxSize, cfg.Storage.MaxUploadSize)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
database:
  driver: SQLite
  path: /tmp/showcase.db
storage:
  type: s3
  s3_endpoint: http://minio:9000
  max_upload_size: 1048576
seed:
  enabled: false
`), 0644))

	t.Setenv("STORAGE_S3_ACCESS_KEY", "from-env")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, database.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/showcase.db", cfg.Database.DatabaseSettings().Path)
	assert.EqualValues(t, 1048576, cfg.Storage.MaxUploadSize)
	assert.False(t, cfg.Seed.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)

	s := cfg.Storage.StorageSettings()
	assert.Equal(t, "s3", s.Type)
	assert.Equal(t, "http://minio:9000", s.S3.Endpoint)
	assert.Equal(t, "from-env", s.S3.AccessKeyID)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=7070\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("SERVER_PORT") })

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := LoadConfig("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoadConfig_S3PublicURL(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORAGE_TYPE", "s3")
	t.Setenv("STORAGE_S3_ENDPOINT", "http://minio:9000")
	t.Setenv("STORAGE_S3_ACCESS_KEY", "access")
	t.Setenv("STORAGE_S3_SECRET_KEY", "secret")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	blob, err := storage.NewBlobStorage(context.Background(), cfg.Storage.StorageSettings())
	require.NoError(t, err)
	assert.Equal(t, "http://minio:9000/images/uploads/1-abc.png", blob.PublicURL("uploads/1-abc.png"))

	t.Setenv("STORAGE_S3_PUBLIC_BASE_URL", "https://cdn.example.com")

	cfg, err = LoadConfig("")
	require.NoError(t, err)

	blob, err = storage.NewBlobStorage(context.Background(), cfg.Storage.StorageSettings())
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/1-abc.png", blob.PublicURL("uploads/1-abc.png"))
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
