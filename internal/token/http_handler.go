package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"trainingapi/internal/httpx"
)

const (
	UsernameHeader = "x-username"

	completedMessage = "You have completed session 0 - well done"
	notAuthorised    = "Not authorised"
)

type HTTPHandler struct {
	service     *Service
	failureMode FailureMode
}

func NewHTTPHandler(service *Service, failureMode FailureMode) *HTTPHandler {
	return &HTTPHandler{service: service, failureMode: failureMode}
}

type hintResp struct {
	Secret string `json:"secret"`
}

// Hint handles GET /
func (h *HTTPHandler) Hint(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, hintResp{Secret: h.service.EncodedMarker()})
}

type issueResp struct {
	Token string `json:"token"`
}

// Issue handles GET /token
func (h *HTTPHandler) Issue(w http.ResponseWriter, r *http.Request) {
	values := r.Header.Values(UsernameHeader)
	if len(values) == 0 || values[0] == "" {
		httpx.JSONError(w, http.StatusBadRequest, "x-username is missing")
		return
	}
	if len(values) > 1 {
		httpx.JSONError(w, http.StatusBadRequest, "x-username is wrong type")
		return
	}

	tokenStr, err := h.service.Issue(values[0])
	if err != nil {
		if errors.Is(err, ErrNotAllowed) {
			httpx.JSONError(w, http.StatusUnauthorized, notAuthorised)
			return
		}
		log.Printf("issue token: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.JSONSuccess(w, issueResp{Token: tokenStr})
}

type RedeemReq struct {
	Token string `json:"token" validate:"required"`
}

// Redeem handles POST /secret. Responses are plain text.
func (h *HTTPHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	var req RedeemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			httpx.JSONError(w, http.StatusBadRequest, "token missing")
		case errors.As(err, &tooLarge):
			httpx.JSONError(w, http.StatusRequestEntityTooLarge, "request body too large")
		default:
			httpx.JSONError(w, http.StatusBadRequest, "invalid request body")
		}
		return
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, validationErrors[0].Message)
		return
	}

	ok, err := h.service.Redeem(req.Token)
	if err != nil {
		if h.failureMode == FailFault {
			panic(fmt.Errorf("redeem token: %w", err))
		}
		log.Printf("redeem token rejected: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.Text(w, http.StatusUnauthorized, notAuthorised)
		return
	}
	if !ok {
		httpx.Text(w, http.StatusUnauthorized, notAuthorised)
		return
	}

	httpx.Text(w, http.StatusCreated, completedMessage)
}
