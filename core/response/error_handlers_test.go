package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/extractor/core/extract"
	"github.com/dmitrymomot/extractor/core/response"
)

// testContext is a simple test implementation of handler.Context
type testContext struct {
	w http.ResponseWriter
	r *http.Request
}

func (tc *testContext) Deadline() (deadline time.Time, ok bool) { return tc.r.Context().Deadline() }
func (tc *testContext) Done() <-chan struct{}                   { return tc.r.Context().Done() }
func (tc *testContext) Err() error                              { return tc.r.Context().Err() }
func (tc *testContext) Value(key any) any                       { return tc.r.Context().Value(key) }
func (tc *testContext) SetValue(key, val any)                   {}
func (tc *testContext) Request() *http.Request                  { return tc.r }
func (tc *testContext) ResponseWriter() http.ResponseWriter     { return tc.w }
func (tc *testContext) Param(key string) string                 { return "" }

// customStatusError is a test error that implements StatusCode() int
type customStatusError struct {
	message string
	status  int
}

func (e customStatusError) Error() string   { return e.message }
func (e customStatusError) StatusCode() int { return e.status }

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "regular error returns 500",
			err:            errors.New("internal error"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Internal Server Error",
		},
		{
			name:           "HTTPError with 401",
			err:            response.ErrUnauthorized.WithMessage("invalid credentials"),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "invalid credentials",
		},
		{
			name:           "custom error with StatusCode interface",
			err:            customStatusError{message: "custom error", status: http.StatusTeapot},
			expectedStatus: http.StatusTeapot,
			expectedBody:   "I'm a teapot",
		},
		{
			name:           "rejection renders itself",
			err:            extract.LengthRequired{},
			expectedStatus: http.StatusLengthRequired,
			expectedBody:   "Content length header is required",
		},
		{
			name:           "boxed rejection renders itself",
			err:            extract.Box(extract.InvalidURLParam{TypeName: "uint32"}),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid URL param. Expected something of type `uint32`",
		},
		{
			name:           "wrapped rejection renders itself",
			err:            fmt.Errorf("loading order: %w", extract.MissingExtension{}),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Missing request extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			response.ErrorHandler(&testContext{w: w, r: req}, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestJSONErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedJSON   map[string]any
	}{
		{
			name:           "regular error returns 500 with cause",
			err:            errors.New("internal error"),
			expectedStatus: http.StatusInternalServerError,
			expectedJSON: map[string]any{
				"code":    "internal_server_error",
				"message": "Internal Server Error",
				"details": map[string]any{"cause": "internal error"},
			},
		},
		{
			name: "HTTPError with details",
			err: response.ErrUnprocessableEntity.WithMessage("validation failed").WithDetails(map[string]any{
				"field": "email",
			}),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedJSON: map[string]any{
				"code":    "unprocessable_entity",
				"message": "validation failed",
				"details": map[string]any{"field": "email"},
			},
		},
		{
			name:           "rejection keeps status and message",
			err:            extract.PayloadTooLarge{},
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedJSON: map[string]any{
				"code":    "request_entity_too_large",
				"message": "Request payload is too large",
			},
		},
		{
			name:           "rejection with server status",
			err:            extract.MissingRouteParams{},
			expectedStatus: http.StatusInternalServerError,
			expectedJSON: map[string]any{
				"code":    "internal_server_error",
				"message": "No url params found for matched route",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			response.JSONErrorHandler(&testContext{w: w, r: req}, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

			var result map[string]any
			require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
			assert.Equal(t, tt.expectedJSON, result)
		})
	}
}

func TestRenderWritesErrorsAs500(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	response.Render(&testContext{w: w, r: req}, response.Error(errors.New("boom")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "boom\n", w.Body.String())
}
