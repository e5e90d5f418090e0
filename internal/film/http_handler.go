package film

import (
	"log"
	"net/http"

	"trainingapi/internal/httpx"
)

// CustomHeader must be sent once on GET /films and is echoed back.
const CustomHeader = "x-custom-header"

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /films
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	values := r.Header.Values(CustomHeader)
	if len(values) != 1 || values[0] == "" {
		httpx.JSONError(w, http.StatusBadRequest, "x-custom-header is missing or not a string")
		return
	}

	films, err := h.service.List(r.Context())
	if err != nil {
		log.Printf("list films: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set(CustomHeader, values[0])
	httpx.JSONSuccess(w, films)
}
