package http

import (
	"net/http"

	"trainingapi/internal/book"
	"trainingapi/internal/film"
	"trainingapi/internal/token"
)

// Handlers groups the endpoint handlers the router dispatches to.
type Handlers struct {
	Books  *book.HTTPHandler
	Films  *film.HTTPHandler
	Tokens *token.HTTPHandler
}

// NewRouter maps method and path to handlers. Paths it does not know get the
// mux's own 404, known paths with another method its 405.
func NewRouter(h Handlers) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.HandleFunc("GET /{$}", h.Tokens.Hint)
	router.HandleFunc("GET /books", h.Books.List)
	router.HandleFunc("GET /books/{id}", h.Books.GetByID)
	router.HandleFunc("GET /films", h.Films.List)
	router.HandleFunc("GET /token", h.Tokens.Issue)
	router.HandleFunc("POST /secret", h.Tokens.Redeem)

	return router
}
