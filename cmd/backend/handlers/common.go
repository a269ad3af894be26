package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hairizuan-noorazman/showcase/api"
)

const internalErrorMessage = "Internal Server Error"

// HTTPError is an error that carries its own status and client message.
type HTTPError struct {
	Status  int
	Message string
	Field   string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func badRequest(message, field string) *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Message: message, Field: field}
}

// notFound returns the 404 for kind, e.g. "Service not found".
func notFound(kind string, err error) *HTTPError {
	return &HTTPError{Status: http.StatusNotFound, Message: kind + " not found", Err: err}
}

// invalidInput turns an entity validation sentinel into a 400 naming its field.
// Errors not in fields are returned unchanged.
func invalidInput(err error, fields map[error]string) error {
	for sentinel, field := range fields {
		if errors.Is(err, sentinel) {
			return &HTTPError{Status: http.StatusBadRequest, Message: sentinel.Error(), Field: field, Err: err}
		}
	}
	return err
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes the error body shared by every route.
func respondError(w http.ResponseWriter, status int, message, field string) {
	respondJSON(w, status, api.ErrorBody{Message: message, Field: field})
}

// parseID reads the {id} path parameter as a positive integer that fits a
// signed database key.
func parseID(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, strconv.IntSize-1)
	if err != nil || id == 0 {
		return 0, badRequest("invalid id: must be a positive integer", "id")
	}
	return uint(id), nil
}
