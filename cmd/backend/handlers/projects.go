package handlers

import (
	"errors"
	"net/http"

	"github.com/hairizuan-noorazman/showcase/api"
	"github.com/hairizuan-noorazman/showcase/logger"
	"github.com/hairizuan-noorazman/showcase/project"
)

var projectFields = map[error]string{
	project.ErrInvalidTitle:       "title",
	project.ErrInvalidDescription: "description",
	project.ErrInvalidImage:       "image",
	project.ErrInvalidCategory:    "category",
}

// projectHandler handles portfolio project requests.
type projectHandler struct {
	store  project.Store
	logger logger.Logger
}

func newProjectHandler(store project.Store, log logger.Logger) *projectHandler {
	return &projectHandler{store: store, logger: log}
}

func (h *projectHandler) actions() map[api.Action]action {
	return map[api.Action]action{
		api.ActionList:   h.list,
		api.ActionGet:    h.get,
		api.ActionCreate: h.create,
		api.ActionUpdate: h.update,
		api.ActionDelete: h.delete,
	}
}

func (h *projectHandler) list(r *http.Request, _ interface{}) (interface{}, error) {
	return h.store.List(r.Context())
}

func (h *projectHandler) get(r *http.Request, _ interface{}) (interface{}, error) {
	id, err := parseID(r)
	if err != nil {
		return nil, err
	}

	p, err := h.store.GetByID(r.Context(), id)
	if errors.Is(err, project.ErrProjectNotFound) {
		return nil, notFound("Project", err)
	}
	return p, err
}

func (h *projectHandler) create(r *http.Request, in interface{}) (interface{}, error) {
	p := in.(*api.ProjectInput).Project()
	if err := h.store.Create(r.Context(), p); err != nil {
		return nil, invalidInput(err, projectFields)
	}
	return p, nil
}

func (h *projectHandler) update(r *http.Request, in interface{}) (interface{}, error) {
	id, err := parseID(r)
	if err != nil {
		return nil, err
	}

	patch := in.(*api.Patch[api.ProjectInput])
	var setters []project.UpdateSetter
	if patch.Has("title") {
		setters = append(setters, project.SetTitle(patch.Value.Title))
	}
	if patch.Has("description") {
		setters = append(setters, project.SetDescription(patch.Value.Description))
	}
	if patch.Has("image") {
		setters = append(setters, project.SetImage(patch.Value.Image))
	}
	if patch.Has("category") {
		setters = append(setters, project.SetCategory(patch.Value.Category))
	}

	p, err := h.store.Update(r.Context(), id, setters...)
	if errors.Is(err, project.ErrProjectNotFound) {
		return nil, notFound("Project", err)
	}
	if err != nil {
		return nil, invalidInput(err, projectFields)
	}
	return p, nil
}

func (h *projectHandler) delete(r *http.Request, _ interface{}) (interface{}, error) {
	id, err := parseID(r)
	if err != nil {
		return nil, err
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return nil, notFound("Project", err)
		}
		return nil, err
	}
	return nil, nil
}
