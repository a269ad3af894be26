package handlers

import (
	"errors"
	"net/http"

	"github.com/hairizuan-noorazman/showcase/api"
	"github.com/hairizuan-noorazman/showcase/logger"
	"github.com/hairizuan-noorazman/showcase/upload"
)

// uploadField is the multipart field carrying the image.
const uploadField = "image"

// multipartMemory is how much of a multipart body is kept in memory before spilling to disk.
const multipartMemory = 8 << 20

type uploadHandler struct {
	service *upload.Service
	logger  logger.Logger
}

func newUploadHandler(service *upload.Service, log logger.Logger) *uploadHandler {
	return &uploadHandler{service: service, logger: log}
}

func (h *uploadHandler) actions() map[api.Action]action {
	return map[api.Action]action{
		api.ActionUpload: h.upload,
	}
}

func (h *uploadHandler) upload(r *http.Request, _ interface{}) (interface{}, error) {
	if !h.service.Configured() {
		return nil, upload.ErrStorageNotConfigured
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, badRequest(upload.ErrTooLarge.Error(), uploadField)
		}
		return nil, badRequest("request must be multipart/form-data", "")
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		return nil, badRequest("No file provided", uploadField)
	}
	defer file.Close()

	result, err := h.service.Ingest(r.Context(), upload.File{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	})
	if err != nil {
		if errors.Is(err, upload.ErrNotImage) || errors.Is(err, upload.ErrTooLarge) || errors.Is(err, upload.ErrEmptyFile) {
			return nil, &HTTPError{Status: http.StatusBadRequest, Message: err.Error(), Field: uploadField, Err: err}
		}
		return nil, err
	}

	return &api.UploadResponse{URL: result.URL}, nil
}
