package book

import (
	"errors"
	"log"
	"net/http"

	"trainingapi/internal/entity"
	"trainingapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		log.Printf("list books: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	httpx.JSONSuccess(w, books)
}

// GetByID handles GET /books/{id}. A numeric id with no matching book is
// answered with 200 and no data field.
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	n, ok := parseNumber(r.PathValue("id"))
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "id is not a number")
		return
	}

	if n == featuredID {
		w.Header().Set(secretHeader, secretHeaderValue)
		httpx.JSONSuccess(w, featuredBook)
		return
	}

	id, ok := asIndex(n)
	if !ok {
		httpx.JSONData(w, http.StatusOK, nil)
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			httpx.JSONData(w, http.StatusOK, nil)
			return
		}
		log.Printf("get book: request_id=%s id=%d error=%v", httpx.RequestIDFrom(r), id, err)
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	httpx.JSONSuccess(w, b)
}
