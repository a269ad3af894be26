package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hairizuan-noorazman/showcase/api"
	"github.com/hairizuan-noorazman/showcase/catalog"
	"github.com/hairizuan-noorazman/showcase/logger"
	"github.com/hairizuan-noorazman/showcase/upload"
)

// bodyOverhead is the allowance for multipart framing on top of the upload ceiling.
const bodyOverhead = 1 << 20

// action runs one contract entry. in is the decoded input when the entry
// declares one. A nil result with a nil error is answered with an empty body.
type action func(r *http.Request, in interface{}) (interface{}, error)

// Dispatcher binds contract entries to resource handlers.
type Dispatcher struct {
	logger  logger.Logger
	maxBody int64
	actions map[api.Resource]map[api.Action]action
}

// Register binds every route of api.Contract on router.
// Only the routes declared in the contract are registered.
func Register(router *mux.Router, gw *catalog.Gateway, uploader *upload.Service, log logger.Logger) *Dispatcher {
	d := &Dispatcher{
		logger:  log,
		maxBody: uploader.MaxSize() + bodyOverhead,
		actions: map[api.Resource]map[api.Action]action{
			api.Projects: newProjectHandler(gw.Projects, log).actions(),
			api.Services: newServiceHandler(gw.Services, log).actions(),
			api.Articles: newArticleHandler(gw.Articles, log).actions(),
			api.Reviews:  newReviewHandler(gw.Reviews, log).actions(),
			api.Partners: newPartnerHandler(gw.Partners, log).actions(),
			api.Upload:   newUploadHandler(uploader, log).actions(),
			api.Health:   {api.ActionCheck: health},
		},
	}

	for _, resource := range api.Resources {
		for _, act := range api.Actions(resource) {
			entry := api.Contract[resource][act]
			fn, ok := d.actions[resource][act]
			if !ok {
				log.Warn(context.Background(), "no handler for contract entry", map[string]interface{}{
					"resource": string(resource),
					"action":   string(act),
				})
				continue
			}
			router.Handle(api.MuxPath(entry.Path), d.handle(entry, fn)).Methods(entry.Method)
		}
	}

	return d
}

func (d *Dispatcher) handle(entry api.Entry, fn action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, d.maxBody)

		var in interface{}
		if entry.Input != nil {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				d.fail(w, r, readError(err))
				return
			}
			in, err = entry.Input.Decode(body)
			if err != nil {
				d.fail(w, r, err)
				return
			}
		}

		out, err := fn(r, in)
		if err != nil {
			d.fail(w, r, err)
			return
		}

		if err := d.respond(w, entry, out); err != nil {
			d.fail(w, r, err)
		}
	}
}

// respond checks out against the entry's success schema before writing it.
func (d *Dispatcher) respond(w http.ResponseWriter, entry api.Entry, out interface{}) error {
	status := entry.SuccessStatus()
	schema, ok := entry.Response(status)
	if !ok {
		return fmt.Errorf("no response schema for status %d", status)
	}
	if err := schema.Check(out); err != nil {
		return fmt.Errorf("response does not match contract: %w", err)
	}

	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return nil
	}
	respondJSON(w, status, out)
	return nil
}

// fail maps err onto the error body. Only unclassified and storage
// errors are logged; their details never reach the client.
func (d *Dispatcher) fail(w http.ResponseWriter, r *http.Request, err error) {
	var (
		httpErr    *HTTPError
		validErr   *api.ValidationError
		storageErr *upload.StorageError
	)

	switch {
	case errors.As(err, &httpErr):
		respondError(w, httpErr.Status, httpErr.Message, httpErr.Field)

	case errors.As(err, &validErr):
		respondError(w, http.StatusBadRequest, validErr.Message, validErr.Field)

	case errors.As(err, &storageErr):
		d.logger.Error(r.Context(), "storage request failed", map[string]interface{}{
			"error":  err.Error(),
			"method": r.Method,
			"path":   r.URL.Path,
		})
		respondError(w, http.StatusInternalServerError, storageErr.Error(), "")

	case errors.Is(err, upload.ErrStorageNotConfigured):
		respondError(w, http.StatusInternalServerError, "Storage is not configured", "")

	default:
		d.logger.Error(r.Context(), "request failed", map[string]interface{}{
			"error":  err.Error(),
			"method": r.Method,
			"path":   r.URL.Path,
		})
		respondError(w, http.StatusInternalServerError, internalErrorMessage, "")
	}
}

func readError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return badRequest("request body is too large", "")
	}
	return fmt.Errorf("failed to read request body: %w", err)
}
