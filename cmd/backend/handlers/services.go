package handlers

import (
	"errors"
	"net/http"

	"github.com/hairizuan-noorazman/showcase/api"
	"github.com/hairizuan-noorazman/showcase/logger"
	"github.com/hairizuan-noorazman/showcase/service"
)

var serviceFields = map[error]string{
	service.ErrInvalidTitle:       "title",
	service.ErrInvalidDescription: "description",
	service.ErrInvalidImage:       "image",
}

type serviceHandler struct {
	store  service.Store
	logger logger.Logger
}

func newServiceHandler(store service.Store, log logger.Logger) *serviceHandler {
	return &serviceHandler{store: store, logger: log}
}

func (h *serviceHandler) actions() map[api.Action]action {
	return map[api.Action]action{
		api.ActionList:   h.list,
		api.ActionGet:    h.get,
		api.ActionCreate: h.create,
		api.ActionUpdate: h.update,
		api.ActionDelete: h.delete,
	}
}

func (h *serviceHandler) list(r *http.Request, _ interface{}) (interface{}, error) {
	return h.store.List(r.Context())
}

func (h *serviceHandler) get(r *http.Request, _ interface{}) (interface{}, error) {
	id, err := parseID(r)
	if err != nil {
		return nil, err
	}

	s, err := h.store.GetByID(r.Context(), id)
	if errors.Is(err, service.ErrServiceNotFound) {
		return nil, notFound("Service", err)
	}
	return s, err
}

func (h *serviceHandler) create(r *http.Request, in interface{}) (interface{}, error) {
	s := in.(*api.ServiceInput).Service()
	if err := h.store.Create(r.Context(), s); err != nil {
		return nil, invalidInput(err, serviceFields)
	}
	return s, nil
}

func (h *serviceHandler) update(r *http.Request, in interface{}) (interface{}, error) {
	id, err := parseID(r)
	if err != nil {
		return nil, err
	}

	patch := in.(*api.Patch[api.ServiceInput])
	var setters []service.UpdateSetter
	if patch.Has("title") {
		setters = append(setters, service.SetTitle(patch.Value.Title))
	}
	if patch.Has("description") {
		setters = append(setters, service.SetDescription(patch.Value.Description))
	}
	if patch.Has("image") {
		setters = append(setters, service.SetImage(patch.Value.Image))
	}
	if patch.Has("icon") {
		setters = append(setters, service.SetIcon(patch.Value.Icon))
	}

	s, err := h.store.Update(r.Context(), id, setters...)
	if errors.Is(err, service.ErrServiceNotFound) {
		return nil, notFound("Service", err)
	}
	if err != nil {
		return nil, invalidInput(err, serviceFields)
	}
	return s, nil
}

func (h *serviceHandler) delete(r *http.Request, _ interface{}) (interface{}, error) {
	id, err := parseID(r)
	if err != nil {
		return nil, err
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			return nil, notFound("Service", err)
		}
		return nil, err
	}
	return nil, nil
}
