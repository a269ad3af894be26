package main

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangedFields(t *testing.T) {
	cmd := &cobra.Command{Use: "update"}
	var title, image string
	cmd.Flags().StringVar(&title, "title", "", "")
	cmd.Flags().StringVar(&image, "image", "", "")
	require.NoError(t, cmd.Flags().Parse([]string{"--image", ""}))

	assert.Equal(t, []string{"image"}, changedFields(cmd, "title", "image"))
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★☆☆", stars(3))
	assert.Equal(t, "★★★★★", stars(5))
	assert.Equal(t, "7", stars(7))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}

func TestRootCommandUsesURLFlag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, "/api/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	root := newRootCmd()
	root.SetArgs([]string{"health", "--url", srv.URL})
	t.Cleanup(func() { flagURL = "" })

	require.NoError(t, root.Execute())
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestUpdateRequiresAField(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	root := newRootCmd()
	root.SetArgs([]string{"projects", "update", "--id", "1", "--url", "http://127.0.0.1:1"})
	t.Cleanup(func() { flagURL = "" })

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to update")
}
