package handlers

import (
	"errors"
	"net/http"

	"github.com/hairizuan-noorazman/showcase/api"
	"github.com/hairizuan-noorazman/showcase/logger"
	"github.com/hairizuan-noorazman/showcase/partner"
)

var partnerFields = map[error]string{
	partner.ErrInvalidName: "name",
	partner.ErrInvalidLogo: "logo",
}

type partnerHandler struct {
	store  partner.Store
	logger logger.Logger
}

func newPartnerHandler(store partner.Store, log logger.Logger) *partnerHandler {
	return &partnerHandler{store: store, logger: log}
}

func (h *partnerHandler) actions() map[api.Action]action {
	return map[api.Action]action{
		api.ActionList:   h.list,
		api.ActionCreate: h.create,
		api.ActionDelete: h.delete,
	}
}

func (h *partnerHandler) list(r *http.Request, _ interface{}) (interface{}, error) {
	return h.store.List(r.Context())
}

func (h *partnerHandler) create(r *http.Request, in interface{}) (interface{}, error) {
	p := in.(*api.PartnerInput).Partner()
	if err := h.store.Create(r.Context(), p); err != nil {
		return nil, invalidInput(err, partnerFields)
	}
	return p, nil
}

func (h *partnerHandler) delete(r *http.Request, _ interface{}) (interface{}, error) {
	id, err := parseID(r)
	if err != nil {
		return nil, err
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, partner.ErrPartnerNotFound) {
			return nil, notFound("Partner", err)
		}
		return nil, err
	}
	return nil, nil
}
