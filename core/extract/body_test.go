package extract_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dmitrymomot/extractor/core/extract"
)

func TestTakeBodyOnce(t *testing.T) {
	t.Parallel()

	req := newRequest(http.MethodPost, "/", "payload")

	body, rej := req.TakeBody()
	require.Nil(t, rej)
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	assert.Equal(t, http.NoBody, req.Body, "slot is left with an empty body")

	body, rej = req.TakeBody()
	assert.Nil(t, body)
	require.NotNil(t, rej)
	assert.Equal(t, http.StatusInternalServerError, rej.StatusCode())
	assert.IsType(t, extract.BodyAlreadyTaken{}, rej)
}

func TestTakeBodyNilBody(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Body = nil
	req := extract.NewRequest(r)

	body, rej := req.TakeBody()
	require.Nil(t, rej)
	assert.Equal(t, http.NoBody, body)
}

func TestBodyExtractorsShareTheGuard(t *testing.T) {
	t.Parallel()

	extractors := map[string]func(*extract.Request) extract.Rejection{
		"bytes": func(r *extract.Request) extract.Rejection {
			_, rej := extract.Bytes()(r)
			return rej
		},
		"string": func(r *extract.Request) extract.Rejection {
			_, rej := extract.String()(r)
			return rej
		},
		"body": func(r *extract.Request) extract.Rejection {
			_, rej := extract.Body()(r)
			return rej
		},
		"json": func(r *extract.Request) extract.Rejection {
			_, rej := extract.JSON[map[string]any]()(r)
			return rej
		},
		"bounded": func(r *extract.Request) extract.Rejection {
			_, rej := extract.BytesMaxLength(1024)(r)
			return rej
		},
	}

	for firstName, first := range extractors {
		for secondName, second := range extractors {
			t.Run(firstName+"_then_"+secondName, func(t *testing.T) {
				t.Parallel()

				req := newRequest(http.MethodPost, "/", `{"a":1}`)
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("Content-Length", "7")

				require.Nil(t, first(req))

				rej := second(req)
				require.NotNil(t, rej)
				assert.Equal(t, http.StatusInternalServerError, rej.StatusCode())

				var taken extract.BodyAlreadyTaken
				assert.True(t, errors.As(rej, &taken))
			})
		}
	}
}

func TestAtMostOneBodyTakeProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		attempts := rapid.IntRange(1, 8).Draw(t, "attempts")
		req := newRequest(http.MethodPost, "/", rapid.String().Draw(t, "body"))

		succeeded := 0
		for range attempts {
			_, rej := req.TakeBody()
			if rej == nil {
				succeeded++
				continue
			}
			if rej.StatusCode() != http.StatusInternalServerError {
				t.Fatalf("unexpected status %d", rej.StatusCode())
			}
		}
		if succeeded != 1 {
			t.Fatalf("expected exactly one successful take, got %d", succeeded)
		}
	})
}

func TestBytes(t *testing.T) {
	t.Parallel()

	req := newRequest(http.MethodPost, "/", "\x00\xffraw")
	data, rej := extract.Bytes()(req)
	require.Nil(t, rej)
	assert.Equal(t, []byte("\x00\xffraw"), data)
}

func TestBytesBufferFailure(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/", nil)
	r.Body = failingBody{}
	req := extract.NewRequest(r)

	_, rej := extract.Bytes()(req)
	require.NotNil(t, rej)
	assert.Equal(t, http.StatusBadRequest, rej.StatusCode())
	assert.Equal(t, "Failed to buffer the request body: connection reset", rej.Error())

	var buf extract.FailedToBufferBody
	assert.True(t, errors.As(rej, &buf))
}

func TestString(t *testing.T) {
	t.Parallel()

	t.Run("valid utf-8", func(t *testing.T) {
		t.Parallel()

		s, rej := extract.String()(newRequest(http.MethodPost, "/", "héllo wörld"))
		require.Nil(t, rej)
		assert.Equal(t, "héllo wörld", s)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		s, rej := extract.String()(newRequest(http.MethodPost, "/", ""))
		require.Nil(t, rej)
		assert.Empty(t, s)
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		t.Parallel()

		_, rej := extract.String()(newRequest(http.MethodPost, "/", "ok\xff\xfe"))
		require.NotNil(t, rej)
		assert.Equal(t, http.StatusBadRequest, rej.StatusCode())
		assert.True(t, strings.HasPrefix(rej.Error(), "Response body didn't contain valid UTF-8: "))
		assert.Contains(t, rej.Error(), "at byte offset 2")
		assert.ErrorIs(t, rej, extract.ErrInvalidUTF8)

		var bad extract.InvalidUTF8
		assert.True(t, errors.As(rej, &bad))
	})

	t.Run("buffer failure is distinct from invalid utf-8", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Body = failingBody{}

		_, rej := extract.String()(extract.NewRequest(r))
		require.NotNil(t, rej)

		var buf extract.FailedToBufferBody
		assert.True(t, errors.As(rej, &buf))
		var bad extract.InvalidUTF8
		assert.False(t, errors.As(rej, &bad))
	})
}

func TestBodyPassThrough(t *testing.T) {
	t.Parallel()

	tracked := &trackingBody{Reader: strings.NewReader("stream me")}
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	r.Body = tracked
	req := extract.NewRequest(r)

	body, rej := extract.Body()(req)
	require.Nil(t, rej)
	assert.False(t, tracked.read, "body must not be buffered by the extractor")

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "stream me", string(data))

	_, rej = extract.Body()(req)
	require.NotNil(t, rej)
	assert.IsType(t, extract.BodyAlreadyTaken{}, rej)
}

func TestBytesMaxLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		contentLength string
		body          string
		wantStatus    int
		wantBody      string
	}{
		{name: "missing header", contentLength: "", body: "abc", wantStatus: http.StatusLengthRequired},
		{name: "unparseable header", contentLength: "many", body: "abc", wantStatus: http.StatusLengthRequired},
		{name: "negative header", contentLength: "-1", body: "abc", wantStatus: http.StatusLengthRequired},
		{name: "over limit", contentLength: "11", body: "abc", wantStatus: http.StatusRequestEntityTooLarge},
		{name: "at limit", contentLength: "10", body: "0123456789", wantBody: "0123456789"},
		{name: "under limit", contentLength: "3", body: "abc", wantBody: "abc"},
		// The declared length is trusted; the extra bytes are buffered anyway.
		{name: "declared smaller than sent", contentLength: "2", body: "abcdefghijklmnop", wantBody: "abcdefghijklmnop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tracked := &trackingBody{Reader: strings.NewReader(tt.body)}
			r := httptest.NewRequest(http.MethodPost, "/", nil)
			r.Body = tracked
			if tt.contentLength != "" {
				r.Header.Set("Content-Length", tt.contentLength)
			}
			req := extract.NewRequest(r)

			data, rej := extract.BytesMaxLength(10)(req)
			if tt.wantStatus != 0 {
				require.NotNil(t, rej)
				assert.Equal(t, tt.wantStatus, rej.StatusCode())
				assert.False(t, tracked.read, "body must not be read when rejecting on the header")

				// The body is still available to other extractors.
				_, rej = extract.Bytes()(req)
				assert.Nil(t, rej)
				return
			}

			require.Nil(t, rej)
			assert.Equal(t, tt.wantBody, string(data))
		})
	}
}

func TestBytesMaxLengthProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		limit := rapid.Int64Range(0, 1<<20).Draw(t, "limit")
		hasHeader := rapid.Bool().Draw(t, "hasHeader")
		declared := rapid.Int64Range(0, 1<<21).Draw(t, "declared")
		body := rapid.StringN(0, 64, -1).Draw(t, "body")

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		if hasHeader {
			r.Header.Set("Content-Length", strconv.FormatInt(declared, 10))
		}

		data, rej := extract.BytesMaxLength(limit)(extract.NewRequest(r))
		switch {
		case !hasHeader:
			if rej == nil || rej.StatusCode() != http.StatusLengthRequired {
				t.Fatalf("expected 411, got %v", rej)
			}
		case declared > limit:
			if rej == nil || rej.StatusCode() != http.StatusRequestEntityTooLarge {
				t.Fatalf("expected 413, got %v", rej)
			}
		default:
			if rej != nil {
				t.Fatalf("unexpected rejection %v", rej)
			}
			if string(data) != body {
				t.Fatalf("body mismatch: %q != %q", data, body)
			}
		}
	})
}
