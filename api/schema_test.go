package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/hairizuan-noorazman/showcase/project"
	"github.com/hairizuan-noorazman/showcase/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationErr(t *testing.T, err error) *ValidationError {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	return verr
}

func TestObjectSchema_Decode(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
		wantMsg   string
	}{
		{"missing image", `{"title":"T","description":"D","category":"C"}`, "image", "image is required"},
		{"blank title", `{"title":"  ","description":"D","image":"I","category":"C"}`, "title", "title must not be blank"},
		{"wrong type", `{"title":5,"description":"D","image":"I","category":"C"}`, "title", "title must be a string"},
		{"first field wins", `{}`, "title", "title is required"},
		{"not an object", `[]`, "", "body must be an object"},
		{"empty body", ``, "", "body is required"},
		{"malformed", `{"title":`, "", "invalid JSON body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ProjectInputSchema.Decode([]byte(tt.body))
			verr := validationErr(t, err)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, tt.wantMsg, verr.Message)
		})
	}
}

func TestObjectSchema_DecodeValid(t *testing.T) {
	v, err := ProjectInputSchema.Decode([]byte(`{"title":"Villa","description":"D","image":"https://x/y.jpg","category":"Residential","id":99}`))
	require.NoError(t, err)

	in, ok := v.(*ProjectInput)
	require.True(t, ok)
	assert.Equal(t, "Villa", in.Title)
	assert.Equal(t, "Residential", in.Project().Category)
}

func TestReviewInput_Rating(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"too high", `{"customerName":"A","content":"C","rating":6}`, "rating must be at most 5"},
		{"missing", `{"customerName":"A","content":"C"}`, "rating must be at least 1"},
		{"fractional", `{"customerName":"A","content":"C","rating":4.5}`, "rating must be an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReviewInputSchema.Decode([]byte(tt.body))
			verr := validationErr(t, err)
			assert.Equal(t, "rating", verr.Field)
			assert.Equal(t, tt.wantMsg, verr.Message)
		})
	}

	v, err := ReviewInputSchema.Decode([]byte(`{"customerName":"Ahmad","content":"Great work","rating":5}`))
	require.NoError(t, err)
	assert.Equal(t, 5, v.(*ReviewInput).Rating)
}

func TestPartialSchema_Decode(t *testing.T) {
	v, err := ProjectPatchSchema.Decode([]byte(`{"title":"New Title","unknown":1}`))
	require.NoError(t, err)

	patch, ok := v.(*Patch[ProjectInput])
	require.True(t, ok)
	assert.True(t, patch.Has("title"))
	assert.False(t, patch.Has("description"))
	assert.False(t, patch.Has("unknown"))
	assert.Equal(t, "New Title", patch.Value.Title)
}

func TestPartialSchema_EmptyObject(t *testing.T) {
	v, err := ArticlePatchSchema.Decode([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, v.(*Patch[ArticleInput]).Fields)
}

func TestPartialSchema_SuppliedFieldsValidated(t *testing.T) {
	_, err := ProjectPatchSchema.Decode([]byte(`{"title":"ok","image":""}`))
	verr := validationErr(t, err)
	assert.Equal(t, "image", verr.Field)
	assert.Equal(t, "image is required", verr.Message)

	_, err = ProjectPatchSchema.Decode([]byte(`{"category":["a"]}`))
	verr = validationErr(t, err)
	assert.Equal(t, "category", verr.Field)

	_, err = ProjectPatchSchema.Decode([]byte(`"title"`))
	verr = validationErr(t, err)
	assert.Equal(t, "body must be an object", verr.Message)
}

func TestPartialSchema_NullIcon(t *testing.T) {
	v, err := ServicePatchSchema.Decode([]byte(`{"icon":null}`))
	require.NoError(t, err)

	patch := v.(*Patch[ServiceInput])
	assert.True(t, patch.Has("icon"))
	assert.Nil(t, patch.Value.Icon)
}

func TestPatch_MarshalJSON(t *testing.T) {
	patch := NewPatch(ServiceInput{Title: "Paint", Description: "ignored"}, "title", "icon")

	data, err := json.Marshal(patch)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Paint","icon":null}`, string(data))

	v, err := ServicePatchSchema.Decode(data)
	require.NoError(t, err)
	decoded := v.(*Patch[ServiceInput])
	assert.Equal(t, map[string]bool{"title": true, "icon": true}, decoded.Fields)
}

func TestListSchema_RoundTrip(t *testing.T) {
	icon := "Hammer"
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	items := []service.Service{
		{ID: 1, Title: "Construction", Description: "Build", Image: "https://x/1.jpg", Icon: &icon, CreatedAt: created},
		{ID: 2, Title: "Painting", Description: "Paint", Image: "https://x/2.jpg", CreatedAt: created},
	}
	schema := List[service.Service]()
	require.NoError(t, schema.Check(items))

	data, err := json.Marshal(items)
	require.NoError(t, err)

	v, err := schema.Decode(data)
	require.NoError(t, err)
	if diff := cmp.Diff(items, v.([]service.Service)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestListSchema_EmptyAndInvalid(t *testing.T) {
	schema := List[project.Project]()

	v, err := schema.Decode([]byte(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, v)
	assert.Empty(t, v.([]project.Project))

	_, err = schema.Decode([]byte(`null`))
	assert.Error(t, err)

	_, err = schema.Decode([]byte(`[{"id":1,"title":"","description":"D","image":"I","category":"C"}]`))
	assert.ErrorIs(t, err, project.ErrInvalidTitle)
}

func TestListSchema_CheckPointers(t *testing.T) {
	schema := List[project.Project]()

	assert.NoError(t, schema.Check([]*project.Project{
		{ID: 1, Title: "T", Description: "D", Image: "I", Category: "C"},
	}))
	assert.ErrorIs(t, schema.Check([]*project.Project{nil}), ErrSchemaMismatch)
	assert.ErrorIs(t, schema.Check([]*project.Project{{ID: 1}}), project.ErrInvalidTitle)
	assert.ErrorIs(t, schema.Check([]string{"x"}), ErrSchemaMismatch)
}

func TestObjectSchema_Check(t *testing.T) {
	assert.NoError(t, ErrorSchema.Check(ErrorBody{Message: "Service not found"}))
	assert.NoError(t, ErrorSchema.Check(&ErrorBody{Message: "x"}))
	assert.Error(t, ErrorSchema.Check(ErrorBody{}))
	assert.ErrorIs(t, ErrorSchema.Check("nope"), ErrSchemaMismatch)
}

func TestVoidSchema(t *testing.T) {
	v, err := Void().Decode(nil)
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.Error(t, Void().Check(ErrorBody{}))

	_, err = Void().Decode([]byte(`{}`))
	assert.Error(t, err)
}
