package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContract_ResourceActions(t *testing.T) {
	full := []Action{ActionList, ActionGet, ActionCreate, ActionUpdate, ActionDelete}
	short := []Action{ActionList, ActionCreate, ActionDelete}

	tests := []struct {
		resource Resource
		want     []Action
	}{
		{Projects, full},
		{Services, full},
		{Articles, full},
		{Reviews, short},
		{Partners, short},
		{Upload, []Action{ActionUpload}},
		{Health, []Action{ActionCheck}},
	}

	for _, tt := range tests {
		t.Run(string(tt.resource), func(t *testing.T) {
			assert.Equal(t, tt.want, Actions(tt.resource))
		})
	}
}

func TestContract_Entries(t *testing.T) {
	tests := []struct {
		resource Resource
		action   Action
		method   string
		path     string
		success  int
		hasInput bool
	}{
		{Projects, ActionList, http.MethodGet, "/api/projects", http.StatusOK, false},
		{Projects, ActionGet, http.MethodGet, "/api/projects/:id", http.StatusOK, false},
		{Projects, ActionCreate, http.MethodPost, "/api/projects", http.StatusCreated, true},
		{Projects, ActionUpdate, http.MethodPut, "/api/projects/:id", http.StatusOK, true},
		{Projects, ActionDelete, http.MethodDelete, "/api/projects/:id", http.StatusNoContent, false},
		{Reviews, ActionCreate, http.MethodPost, "/api/reviews", http.StatusCreated, true},
		{Partners, ActionDelete, http.MethodDelete, "/api/partners/:id", http.StatusNoContent, false},
		{Upload, ActionUpload, http.MethodPost, "/api/upload", http.StatusOK, false},
		{Health, ActionCheck, http.MethodGet, "/api/health", http.StatusOK, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.resource)+"."+string(tt.action), func(t *testing.T) {
			entry, err := Lookup(tt.resource, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.method, entry.Method)
			assert.Equal(t, tt.path, entry.Path)
			assert.Equal(t, tt.success, entry.SuccessStatus())
			assert.Equal(t, tt.hasInput, entry.Input != nil)
		})
	}
}

func TestContract_ReviewsHaveNoMemberReads(t *testing.T) {
	_, err := Lookup(Reviews, ActionGet)
	assert.ErrorIs(t, err, ErrUnknownRoute)

	_, err = Lookup(Partners, ActionUpdate)
	assert.ErrorIs(t, err, ErrUnknownRoute)
}

func TestContract_NotFoundDeclared(t *testing.T) {
	for _, r := range []Resource{Projects, Services, Articles, Reviews, Partners} {
		entry, err := Lookup(r, ActionDelete)
		require.NoError(t, err)
		_, ok := entry.Response(http.StatusNotFound)
		assert.True(t, ok, "%s delete should declare 404", r)
	}
}

func TestEntry_Statuses(t *testing.T) {
	entry, err := Lookup(Services, ActionUpdate)
	require.NoError(t, err)
	assert.Equal(t, []int{200, 400, 404, 500}, entry.Statuses())
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		params  map[string]string
		want    string
		wantErr bool
	}{
		{"no placeholders", "/api/projects", nil, "/api/projects", false},
		{"id substituted", "/api/projects/:id", map[string]string{"id": "7"}, "/api/projects/7", false},
		{"value escaped", "/api/projects/:id", map[string]string{"id": "a b"}, "/api/projects/a%20b", false},
		{"missing param", "/api/projects/:id", map[string]string{}, "", true},
		{"empty param", "/api/projects/:id", map[string]string{"id": ""}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildURL(tt.path, tt.params)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMuxPath(t *testing.T) {
	assert.Equal(t, "/api/projects/{id}", MuxPath("/api/projects/:id"))
	assert.Equal(t, "/api/projects", MuxPath("/api/projects"))
}
