package httpx

import (
	"encoding/json"
	"log"
	"net/http"
)

// DataResponse is the success envelope. A nil Data is dropped from the
// output, which yields "{}" for lookups that matched nothing.
type DataResponse struct {
	Data any `json:"data,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// JSONData writes {"data": data} with the given status.
func JSONData(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, DataResponse{Data: data})
}

// JSONSuccess writes {"data": data} with 200.
func JSONSuccess(w http.ResponseWriter, data any) {
	JSONData(w, http.StatusOK, data)
}

// JSONError writes {"error": message}.
func JSONError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: message})
}

// Text writes a plain text body.
func Text(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(message))
}
