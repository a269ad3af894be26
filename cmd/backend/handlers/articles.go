package handlers

import (
	"errors"
	"net/http"

	"github.com/hairizuan-noorazman/showcase/api"
	"github.com/hairizuan-noorazman/showcase/article"
	"github.com/hairizuan-noorazman/showcase/logger"
)

var articleFields = map[error]string{
	article.ErrInvalidTitle:   "title",
	article.ErrInvalidContent: "content",
	article.ErrInvalidImage:   "image",
}

type articleHandler struct {
	store  article.Store
	logger logger.Logger
}

func newArticleHandler(store article.Store, log logger.Logger) *articleHandler {
	return &articleHandler{store: store, logger: log}
}

func (h *articleHandler) actions() map[api.Action]action {
	return map[api.Action]action{
		api.ActionList:   h.list,
		api.ActionGet:    h.get,
		api.ActionCreate: h.create,
		api.ActionUpdate: h.update,
		api.ActionDelete: h.delete,
	}
}

func (h *articleHandler) list(r *http.Request, _ interface{}) (interface{}, error) {
	return h.store.List(r.Context())
}

func (h *articleHandler) get(r *http.Request, _ interface{}) (interface{}, error) {
	id, err := parseID(r)
	if err != nil {
		return nil, err
	}

	a, err := h.store.GetByID(r.Context(), id)
	if errors.Is(err, article.ErrArticleNotFound) {
		return nil, notFound("Article", err)
	}
	return a, err
}

func (h *articleHandler) create(r *http.Request, in interface{}) (interface{}, error) {
	a := in.(*api.ArticleInput).Article()
	if err := h.store.Create(r.Context(), a); err != nil {
		return nil, invalidInput(err, articleFields)
	}
	return a, nil
}

func (h *articleHandler) update(r *http.Request, in interface{}) (interface{}, error) {
	id, err := parseID(r)
	if err != nil {
		return nil, err
	}

	patch := in.(*api.Patch[api.ArticleInput])
	var setters []article.UpdateSetter
	if patch.Has("title") {
		setters = append(setters, article.SetTitle(patch.Value.Title))
	}
	if patch.Has("content") {
		setters = append(setters, article.SetContent(patch.Value.Content))
	}
	if patch.Has("image") {
		setters = append(setters, article.SetImage(patch.Value.Image))
	}

	a, err := h.store.Update(r.Context(), id, setters...)
	if errors.Is(err, article.ErrArticleNotFound) {
		return nil, notFound("Article", err)
	}
	if err != nil {
		return nil, invalidInput(err, articleFields)
	}
	return a, nil
}

func (h *articleHandler) delete(r *http.Request, _ interface{}) (interface{}, error) {
	id, err := parseID(r)
	if err != nil {
		return nil, err
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, article.ErrArticleNotFound) {
			return nil, notFound("Article", err)
		}
		return nil, err
	}
	return nil, nil
}
