package extract_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/extractor/core/extract"
)

func TestRejectionTaxonomy(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")

	tests := []struct {
		name    string
		rej     extract.Rejection
		status  int
		message string
	}{
		{"query", extract.QueryStringMissing{}, http.StatusBadRequest, "Query string was invalid or missing"},
		{"invalid json", extract.InvalidJSONBody{Err: cause}, http.StatusBadRequest, "Failed to parse the response body as JSON: boom"},
		{"json content type", extract.MissingJSONContentType{}, http.StatusBadRequest, "Expected request with `Content-Type: application/json`"},
		{"extension", extract.MissingExtension{}, http.StatusInternalServerError, "Missing request extension"},
		{"buffer", extract.FailedToBufferBody{Err: cause}, http.StatusBadRequest, "Failed to buffer the request body: boom"},
		{"utf-8", extract.InvalidUTF8{Err: cause}, http.StatusBadRequest, "Response body didn't contain valid UTF-8: boom"},
		{"body taken", extract.BodyAlreadyTaken{}, http.StatusInternalServerError, "Cannot have two request body extractors for a single handler"},
		{"too large", extract.PayloadTooLarge{}, http.StatusRequestEntityTooLarge, "Request payload is too large"},
		{"length", extract.LengthRequired{}, http.StatusLengthRequired, "Content length header is required"},
		{"route params", extract.MissingRouteParams{}, http.StatusInternalServerError, "No url params found for matched route"},
		{"url param", extract.InvalidURLParam{TypeName: "uint32"}, http.StatusBadRequest, "Invalid URL param. Expected something of type `uint32`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.status, tt.rej.StatusCode())
			assert.Equal(t, tt.message, tt.rej.Error())

			for _, rej := range []extract.Rejection{tt.rej, extract.Box(tt.rej)} {
				w := httptest.NewRecorder()
				require.NoError(t, rej.Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
				assert.Equal(t, tt.status, w.Code)
				assert.Equal(t, tt.message, w.Body.String())
				assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
			}
		})
	}
}

func TestRejectionsKeepTheirCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	assert.ErrorIs(t, extract.InvalidJSONBody{Err: cause}, cause)
	assert.ErrorIs(t, extract.FailedToBufferBody{Err: cause}, cause)
	assert.ErrorIs(t, extract.Box(extract.InvalidUTF8{Err: cause}), cause)
}

func TestBox(t *testing.T) {
	t.Parallel()

	assert.Nil(t, extract.Box(nil))

	boxed := extract.Box(extract.PayloadTooLarge{})
	assert.Same(t, boxed, extract.Box(boxed), "boxing is idempotent")
	assert.Equal(t, http.StatusRequestEntityTooLarge, boxed.StatusCode())
	assert.Equal(t, "Request payload is too large", boxed.Error())

	var inner extract.PayloadTooLarge
	assert.True(t, errors.As(boxed, &inner))

	var other extract.LengthRequired
	assert.False(t, errors.As(boxed, &other))
}

func TestReject(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	resp := extract.Reject(extract.LengthRequired{})
	require.NoError(t, resp(w, httptest.NewRequest(http.MethodPost, "/", nil)))
	assert.Equal(t, http.StatusLengthRequired, w.Code)
	assert.Equal(t, "Content length header is required", w.Body.String())
}
