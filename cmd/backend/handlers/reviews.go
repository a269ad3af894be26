package handlers

import (
	"errors"
	"net/http"

	"github.com/hairizuan-noorazman/showcase/api"
	"github.com/hairizuan-noorazman/showcase/logger"
	"github.com/hairizuan-noorazman/showcase/review"
)

var reviewFields = map[error]string{
	review.ErrInvalidCustomerName: "customerName",
	review.ErrInvalidContent:      "content",
	review.ErrInvalidRating:       "rating",
}

// reviewHandler serves testimonials. Reviews cannot be fetched singly or edited.
type reviewHandler struct {
	store  review.Store
	logger logger.Logger
}

func newReviewHandler(store review.Store, log logger.Logger) *reviewHandler {
	return &reviewHandler{store: store, logger: log}
}

func (h *reviewHandler) actions() map[api.Action]action {
	return map[api.Action]action{
		api.ActionList:   h.list,
		api.ActionCreate: h.create,
		api.ActionDelete: h.delete,
	}
}

func (h *reviewHandler) list(r *http.Request, _ interface{}) (interface{}, error) {
	return h.store.List(r.Context())
}

func (h *reviewHandler) create(r *http.Request, in interface{}) (interface{}, error) {
	rv := in.(*api.ReviewInput).Review()
	if err := h.store.Create(r.Context(), rv); err != nil {
		return nil, invalidInput(err, reviewFields)
	}
	return rv, nil
}

func (h *reviewHandler) delete(r *http.Request, _ interface{}) (interface{}, error) {
	id, err := parseID(r)
	if err != nil {
		return nil, err
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, review.ErrReviewNotFound) {
			return nil, notFound("Review", err)
		}
		return nil, err
	}
	return nil, nil
}
