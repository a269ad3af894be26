package handlers

import (
	"net/http"

	"github.com/hairizuan-noorazman/showcase/api"
)

func health(r *http.Request, _ interface{}) (interface{}, error) {
	return api.HealthResponse{Status: "ok"}, nil
}
