package film

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"trainingapi/internal/entity"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))

	films := []entity.Film{
		{Title: "Seven Samurai", Year: 1954, Director: "Akira Kurosawa", Genres: []string{"Action", "Drama"}, Runtime: 207, Rating: 8.6},
	}

	tests := []struct {
		name           string
		headers        []string
		setupMock      func()
		expectedStatus int
		expectedEcho   string
	}{
		{
			name:           "missing header",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty header",
			headers:        []string{""},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "repeated header",
			headers:        []string{"foo", "bar"},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "echoes header",
			headers: []string{"foo"},
			setupMock: func() {
				mockRepo.EXPECT().Films(gomock.Any()).Return(films, nil)
			},
			expectedStatus: http.StatusOK,
			expectedEcho:   "foo",
		},
		{
			name:    "repository error",
			headers: []string{"foo"},
			setupMock: func() {
				mockRepo.EXPECT().Films(gomock.Any()).Return(nil, context.DeadlineExceeded)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			r := httptest.NewRequest(http.MethodGet, "/films", nil)
			for _, v := range tt.headers {
				r.Header.Add(CustomHeader, v)
			}
			w := httptest.NewRecorder()

			handler.List(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedEcho, w.Header().Get(CustomHeader))
			if tt.expectedStatus == http.StatusBadRequest {
				assert.JSONEq(t, `{"error":"x-custom-header is missing or not a string"}`, w.Body.String())
			}
		})
	}
}

func TestHTTPHandler_ListReturnsFilmsVerbatim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))

	films := []entity.Film{
		{Title: "Spirited Away", Year: 2001, Director: "Hayao Miyazaki", Genres: []string{"Animation"}, Runtime: 125, Rating: 8.6},
		{Title: "12 Angry Men", Year: 1957, Director: "Sidney Lumet", Genres: []string{"Drama"}, Runtime: 96, Rating: 9},
	}
	mockRepo.EXPECT().Films(gomock.Any()).Return(films, nil)

	r := httptest.NewRequest(http.MethodGet, "/films", nil)
	r.Header.Set(CustomHeader, "abc")
	w := httptest.NewRecorder()
	handler.List(w, r)

	var body struct {
		Data []entity.Film `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, films, body.Data)
}
