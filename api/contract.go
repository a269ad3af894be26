// Package api holds the route-and-schema table shared by the HTTP server and
// the Go client. Both sides read the same Entry values, so the payload shapes
// a handler accepts and emits are the ones the client sends and expects.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/hairizuan-noorazman/showcase/article"
	"github.com/hairizuan-noorazman/showcase/partner"
	"github.com/hairizuan-noorazman/showcase/project"
	"github.com/hairizuan-noorazman/showcase/review"
	"github.com/hairizuan-noorazman/showcase/service"
)

// Resource names a group of routes.
type Resource string

const (
	Projects Resource = "projects"
	Services Resource = "services"
	Articles Resource = "articles"
	Reviews  Resource = "reviews"
	Partners Resource = "partners"
	Upload   Resource = "upload"
	Health   Resource = "health"
)

// Action names a single operation on a resource.
type Action string

const (
	ActionList   Action = "list"
	ActionGet    Action = "get"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionUpload Action = "upload"
	ActionCheck  Action = "check"
)

// ErrUnknownRoute is returned when a resource/action pair has no entry.
var ErrUnknownRoute = errors.New("unknown route")

// Entry describes one route: how it is reached, what body it accepts and
// which body shape belongs to each status code it can answer with.
type Entry struct {
	Method string
	Path   string
	// Input is nil for routes without a JSON body.
	Input     Schema
	Responses map[int]Schema
}

// SuccessStatus returns the lowest 2xx status declared for the entry.
func (e Entry) SuccessStatus() int {
	best := 0
	for status := range e.Responses {
		if status >= 200 && status < 300 && (best == 0 || status < best) {
			best = status
		}
	}
	return best
}

// Response returns the schema registered for status.
func (e Entry) Response(status int) (Schema, bool) {
	s, ok := e.Responses[status]
	return s, ok
}

// Statuses returns the declared status codes in ascending order.
func (e Entry) Statuses() []int {
	out := make([]int, 0, len(e.Responses))
	for status := range e.Responses {
		out = append(out, status)
	}
	sort.Ints(out)
	return out
}

var (
	ProjectSchema = Object[project.Project]()
	ServiceSchema = Object[service.Service]()
	ArticleSchema = Object[article.Article]()
	ReviewSchema  = Object[review.Review]()
	PartnerSchema = Object[partner.Partner]()

	ProjectInputSchema = Object[ProjectInput]()
	ServiceInputSchema = Object[ServiceInput]()
	ArticleInputSchema = Object[ArticleInput]()
	ReviewInputSchema  = Object[ReviewInput]()
	PartnerInputSchema = Object[PartnerInput]()

	ProjectPatchSchema = Partial(ProjectInputSchema)
	ServicePatchSchema = Partial(ServiceInputSchema)
	ArticlePatchSchema = Partial(ArticleInputSchema)

	ErrorSchema          = Object[ErrorBody]()
	UploadResponseSchema = Object[UploadResponse]()
	HealthResponseSchema = Object[HealthResponse]()
)

// Contract is the full route table.
var Contract = map[Resource]map[Action]Entry{
	Projects: editable(Projects, ProjectSchema, List[project.Project](), ProjectInputSchema, ProjectPatchSchema),
	Services: editable(Services, ServiceSchema, List[service.Service](), ServiceInputSchema, ServicePatchSchema),
	Articles: editable(Articles, ArticleSchema, List[article.Article](), ArticleInputSchema, ArticlePatchSchema),
	Reviews:  appendOnly(Reviews, ReviewSchema, List[review.Review](), ReviewInputSchema),
	Partners: appendOnly(Partners, PartnerSchema, List[partner.Partner](), PartnerInputSchema),
	Upload: {
		ActionUpload: {
			Method: http.MethodPost,
			Path:   "/api/upload",
			Responses: map[int]Schema{
				http.StatusOK:                  UploadResponseSchema,
				http.StatusBadRequest:          ErrorSchema,
				http.StatusInternalServerError: ErrorSchema,
			},
		},
	},
	Health: {
		ActionCheck: {
			Method: http.MethodGet,
			Path:   "/api/health",
			Responses: map[int]Schema{
				http.StatusOK: HealthResponseSchema,
			},
		},
	},
}

// Resources lists every resource in registration order.
var Resources = []Resource{Projects, Services, Articles, Reviews, Partners, Upload, Health}

var actionOrder = []Action{ActionList, ActionGet, ActionCreate, ActionUpdate, ActionDelete, ActionUpload, ActionCheck}

// Actions returns the actions declared for resource in a stable order.
func Actions(resource Resource) []Action {
	entries := Contract[resource]
	out := make([]Action, 0, len(entries))
	for _, a := range actionOrder {
		if _, ok := entries[a]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Lookup returns the entry for resource and action.
func Lookup(resource Resource, action Action) (Entry, error) {
	entry, ok := Contract[resource][action]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s.%s", ErrUnknownRoute, resource, action)
	}
	return entry, nil
}

func collectionPath(r Resource) string { return "/api/" + string(r) }
func memberPath(r Resource) string     { return "/api/" + string(r) + "/:id" }

func editable(r Resource, item, list, create, update Schema) map[Action]Entry {
	entries := appendOnly(r, item, list, create)
	entries[ActionGet] = Entry{
		Method: http.MethodGet,
		Path:   memberPath(r),
		Responses: map[int]Schema{
			http.StatusOK:                  item,
			http.StatusBadRequest:          ErrorSchema,
			http.StatusNotFound:            ErrorSchema,
			http.StatusInternalServerError: ErrorSchema,
		},
	}
	entries[ActionUpdate] = Entry{
		Method: http.MethodPut,
		Path:   memberPath(r),
		Input:  update,
		Responses: map[int]Schema{
			http.StatusOK:                  item,
			http.StatusBadRequest:          ErrorSchema,
			http.StatusNotFound:            ErrorSchema,
			http.StatusInternalServerError: ErrorSchema,
		},
	}
	return entries
}

func appendOnly(r Resource, item, list, create Schema) map[Action]Entry {
	return map[Action]Entry{
		ActionList: {
			Method: http.MethodGet,
			Path:   collectionPath(r),
			Responses: map[int]Schema{
				http.StatusOK:                  list,
				http.StatusInternalServerError: ErrorSchema,
			},
		},
		ActionCreate: {
			Method: http.MethodPost,
			Path:   collectionPath(r),
			Input:  create,
			Responses: map[int]Schema{
				http.StatusCreated:             item,
				http.StatusBadRequest:          ErrorSchema,
				http.StatusInternalServerError: ErrorSchema,
			},
		},
		ActionDelete: {
			Method: http.MethodDelete,
			Path:   memberPath(r),
			Responses: map[int]Schema{
				http.StatusNoContent:           Void(),
				http.StatusBadRequest:          ErrorSchema,
				http.StatusNotFound:            ErrorSchema,
				http.StatusInternalServerError: ErrorSchema,
			},
		},
	}
}

// BuildURL fills the :name placeholders of path with params.
// Values are path-escaped. A placeholder without a value is an error.
func BuildURL(path string, params map[string]string) (string, error) {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		name := seg[1:]
		value, ok := params[name]
		if !ok || value == "" {
			return "", fmt.Errorf("missing path parameter %q for %s", name, path)
		}
		segments[i] = url.PathEscape(value)
	}
	return strings.Join(segments, "/"), nil
}

// MuxPath rewrites :name placeholders into the {name} form used by gorilla/mux.
func MuxPath(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			segments[i] = "{" + seg[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}
