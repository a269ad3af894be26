package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gorilla/mux"
	"github.com/hairizuan-noorazman/showcase/api"
	"github.com/hairizuan-noorazman/showcase/catalog"
	"github.com/hairizuan-noorazman/showcase/cmd/backend/handlers"
	"github.com/hairizuan-noorazman/showcase/logger"
	"github.com/hairizuan-noorazman/showcase/testutil"
	"github.com/hairizuan-noorazman/showcase/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type memoryStorage struct {
	paths []string
}

func (s *memoryStorage) Upload(ctx context.Context, path string, reader io.Reader, contentType string) error {
	s.paths = append(s.paths, path)
	_, err := io.Copy(io.Discard, reader)
	return err
}

func (s *memoryStorage) PublicURL(path string) string {
	return "https://cdn.example.com/" + path
}

// newServer serves the real route table over a fresh in-memory database.
func newServer(t *testing.T) (*Client, *memoryStorage) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	require.NoError(t, catalog.AutoMigrate(db))

	log := logger.NewTestLogger()
	store := &memoryStorage{}
	router := mux.NewRouter()
	handlers.Register(router, catalog.NewSQLGateway(db, log), upload.NewService(store, 0, log), log)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return New(srv.URL), store
}

// newStub answers every request with the given status and body.
func newStub(t *testing.T, status int, body string) (*Client, *int32) {
	t.Helper()

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return New(srv.URL + "/"), &hits
}

func TestProjectLifecycle(t *testing.T) {
	c, _ := newServer(t)
	ctx := context.Background()

	created, err := c.CreateProject(ctx, api.ProjectInput{
		Title:       "Harbour Villa",
		Description: "Full renovation",
		Image:       "/uploads/villa.jpg",
		Category:    "Residential",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := c.GetProject(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Harbour Villa", got.Title)

	updated, err := c.UpdateProject(ctx, created.ID, api.NewPatch(api.ProjectInput{Title: "Harbour Villa II"}, "title"))
	require.NoError(t, err)
	assert.Equal(t, "Harbour Villa II", updated.Title)
	assert.Equal(t, "Full renovation", updated.Description)
	assert.Equal(t, "Residential", updated.Category)

	list, err := c.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	require.NoError(t, c.DeleteProject(ctx, created.ID))

	_, err = c.GetProject(ctx, created.ID)
	assert.True(t, IsNotFound(err))
}

func TestGetMissingService(t *testing.T) {
	c, _ := newServer(t)

	_, err := c.GetService(context.Background(), 999)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Service not found", apiErr.Message)
	assert.Empty(t, apiErr.Field)
}

func TestClearServiceIcon(t *testing.T) {
	c, _ := newServer(t)
	ctx := context.Background()

	icon := "Hammer"
	created, err := c.CreateService(ctx, api.ServiceInput{
		Title:       "Carpentry",
		Description: "Custom joinery",
		Image:       "/uploads/carpentry.jpg",
		Icon:        &icon,
	})
	require.NoError(t, err)
	require.NotNil(t, created.Icon)

	updated, err := c.UpdateService(ctx, created.ID, api.NewPatch(api.ServiceInput{}, "icon"))
	require.NoError(t, err)
	assert.Nil(t, updated.Icon)
	assert.Equal(t, "Carpentry", updated.Title)
}

func TestReviewsAndPartners(t *testing.T) {
	c, _ := newServer(t)
	ctx := context.Background()

	r, err := c.CreateReview(ctx, api.ReviewInput{CustomerName: "Ana", Content: "Great", Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, r.Rating)

	p, err := c.CreatePartner(ctx, api.PartnerInput{Name: "Acme", Logo: "/uploads/acme.png"})
	require.NoError(t, err)

	reviews, err := c.ListReviews(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	partners, err := c.ListPartners(ctx)
	require.NoError(t, err)
	assert.Len(t, partners, 1)

	require.NoError(t, c.DeleteReview(ctx, r.ID))
	assert.True(t, IsNotFound(c.DeleteReview(ctx, r.ID)))
	require.NoError(t, c.DeletePartner(ctx, p.ID))
}

func TestArticleLifecycle(t *testing.T) {
	c, _ := newServer(t)
	ctx := context.Background()

	a, err := c.CreateArticle(ctx, api.ArticleInput{Title: "Choosing tiles", Content: "Start with the floor", Image: "/uploads/tiles.jpg"})
	require.NoError(t, err)

	updated, err := c.UpdateArticle(ctx, a.ID, api.NewPatch(api.ArticleInput{Content: "Start with the walls"}, "content"))
	require.NoError(t, err)
	assert.Equal(t, "Choosing tiles", updated.Title)
	assert.Equal(t, "Start with the walls", updated.Content)

	list, err := c.ListArticles(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	got, err := c.GetArticle(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Content, got.Content)

	require.NoError(t, c.DeleteArticle(ctx, a.ID))
	assert.True(t, IsNotFound(c.DeleteArticle(ctx, a.ID)))
}

func TestInputValidatedBeforeSending(t *testing.T) {
	c, hits := newStub(t, http.StatusCreated, `{}`)
	ctx := context.Background()

	_, err := c.CreateReview(ctx, api.ReviewInput{CustomerName: "Ana", Content: "Great", Rating: 6})
	var vErr *api.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "rating", vErr.Field)

	_, err = c.UpdateProject(ctx, 1, api.NewPatch(api.ProjectInput{Title: "   "}, "title"))
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "title", vErr.Field)

	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}

func TestErrorBodyField(t *testing.T) {
	c, _ := newStub(t, http.StatusBadRequest, `{"message":"image is required","field":"image"}`)

	_, err := c.CreateProject(context.Background(), api.ProjectInput{Title: "a", Description: "b", Image: "c", Category: "d"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "image is required", apiErr.Message)
	assert.Equal(t, "image", apiErr.Field)
	assert.Contains(t, apiErr.Error(), "field: image")
}

func TestUndeclaredStatus(t *testing.T) {
	c, _ := newStub(t, http.StatusTeapot, `short and stout`)

	_, err := c.ListProjects(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTeapot, apiErr.StatusCode)
	assert.Equal(t, "short and stout", apiErr.Message)
}

func TestResponseOutsideContract(t *testing.T) {
	c, _ := newStub(t, http.StatusOK, `{"id":1}`)

	_, err := c.GetProject(context.Background(), 1)
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "does not match contract")
}

func TestUploadImage(t *testing.T) {
	c, store := newServer(t)

	url, err := c.UploadImage(context.Background(), "photo.png", "image/png", bytes.NewReader(pngBytes))
	require.NoError(t, err)
	require.Len(t, store.paths, 1)
	assert.Equal(t, "https://cdn.example.com/"+store.paths[0], url)
	assert.True(t, strings.HasSuffix(url, ".png"))
}

func TestUploadRejectsNonImage(t *testing.T) {
	c, store := newServer(t)

	_, err := c.UploadImage(context.Background(), "notes.txt", "text/plain", strings.NewReader("hello"))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Empty(t, store.paths)
}

func TestHealth(t *testing.T) {
	c, _ := newServer(t)

	resp, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
}

func TestDebugOutput(t *testing.T) {
	var buf bytes.Buffer
	c, _ := newStub(t, http.StatusOK, `[]`)
	c = New(c.baseURL, WithDebug(&buf))

	_, err := c.ListServices(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "DEBUG: GET ")
	assert.Contains(t, buf.String(), "/api/services")
	assert.Contains(t, buf.String(), "DEBUG: Status 200")
}
