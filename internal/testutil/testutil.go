package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"trainingapi/internal/token"
)

// AllowedUser is on the default allow-list.
const AllowedUser = "milad.amini@griffiths-waite.co.uk"

// IssueTestToken signs a token with the default secret for username.
func IssueTestToken(username string) string {
	t, _ := token.NewIssuer(token.DefaultSecret, token.Marker).IssueToken(username)
	return t
}

// NewRequest creates a new HTTP request for testing. A non-nil body is sent
// as JSON.
func NewRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	bodyBytes, _ := json.Marshal(body)
	r := httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// RecordResponse is a decoded HTTP response.
type RecordResponse struct {
	Code   int
	Header http.Header
	Raw    string
	Body   map[string]interface{}
}

// RecordHTTPResponse reads w's response and decodes a JSON body when there is
// one.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	return ReadResponse(w.Result())
}

// ReadResponse consumes and closes res.Body.
func ReadResponse(res *http.Response) RecordResponse {
	defer res.Body.Close()

	bodyBytes, _ := io.ReadAll(res.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordResponse{
		Code:   res.StatusCode,
		Header: res.Header,
		Raw:    string(bodyBytes),
		Body:   bodyMap,
	}
}

// AssertResponseCode checks if the response code matches expected
func AssertResponseCode(t interface {
	Errorf(format string, args ...any)
}, got, want int) {
	if got != want {
		t.Errorf("got status code %d, want %d", got, want)
	}
}

// AssertResponseBody checks that body[key] equals expectedValue.
func AssertResponseBody(t interface {
	Errorf(format string, args ...any)
}, body map[string]interface{}, key string, expectedValue interface{}) {
	value, ok := body[key]
	if !ok {
		t.Errorf("response body missing key %q", key)
		return
	}
	if value != expectedValue {
		t.Errorf("got %v for key %q, want %v", value, key, expectedValue)
	}
}
