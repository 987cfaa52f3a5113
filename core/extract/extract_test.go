package extract_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dmitrymomot/extractor/core/extension"
	"github.com/dmitrymomot/extractor/core/extract"
	"github.com/dmitrymomot/extractor/core/handler"
	"github.com/dmitrymomot/extractor/core/response"
)

type apiKey struct {
	Value string
}

func (k *apiKey) FromRequest(r *extract.Request) extract.Rejection {
	k.Value = r.Header.Get("X-Api-Key")
	if k.Value == "" {
		return extract.MissingExtension{}
	}
	return nil
}

func TestOf(t *testing.T) {
	t.Parallel()

	req := newRequest(http.MethodGet, "/", "")
	req.Header.Set("X-Api-Key", "secret")

	got, rej := extract.Of[apiKey]()(req)
	require.Nil(t, rej)
	assert.Equal(t, apiKey{Value: "secret"}, got)

	got, rej = extract.Of[apiKey]()(newRequest(http.MethodGet, "/", ""))
	require.NotNil(t, rej)
	assert.Equal(t, apiKey{}, got)
}

func TestOptional(t *testing.T) {
	t.Parallel()

	t.Run("success is wrapped", func(t *testing.T) {
		t.Parallel()

		got, rej := extract.Optional(extract.Query[url1]())(newRequest(http.MethodGet, "/?q=go", ""))
		require.Nil(t, rej)
		require.NotNil(t, got)
		assert.Equal(t, "go", got.Q)
	})

	t.Run("rejection becomes absence", func(t *testing.T) {
		t.Parallel()

		got, rej := extract.Optional(extract.Query[url1]())(newRequest(http.MethodGet, "/", ""))
		assert.Nil(t, rej)
		assert.Nil(t, got)
	})

	t.Run("consumed body stays consumed", func(t *testing.T) {
		t.Parallel()

		req := newRequest(http.MethodPost, "/", "not json")
		req.Header.Set("Content-Type", "application/json")

		got, rej := extract.Optional(extract.JSON[point]())(req)
		assert.Nil(t, rej)
		assert.Nil(t, got)

		_, rej = extract.Bytes()(req)
		require.NotNil(t, rej)
		var taken extract.BodyAlreadyTaken
		assert.True(t, errors.As(rej, &taken))
	})
}

type url1 struct {
	Q string `query:"q"`
}

func TestOptionalNeverRejectsProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		req := newRequest(http.MethodPost, "/", rapid.String().Draw(t, "body"))
		req.URL.RawQuery = rapid.StringMatching(`[a-z=&%0-9;]{0,16}`).Draw(t, "query")
		if rapid.Bool().Draw(t, "json") {
			req.Header.Set("Content-Type", "application/json")
		}
		if rapid.Bool().Draw(t, "params") {
			extract.SetURLParams(req.Extensions(), []extract.URLParam{{Name: "id", Value: rapid.String().Draw(t, "id")}})
		}

		checks := []func() extract.Rejection{
			func() extract.Rejection { _, rej := extract.Optional(extract.Query[url1]())(req); return rej },
			func() extract.Rejection { _, rej := extract.Optional(extract.JSON[point]())(req); return rej },
			func() extract.Rejection { _, rej := extract.Optional(extract.String())(req); return rej },
			func() extract.Rejection { _, rej := extract.Optional(extract.Path1[uint16]())(req); return rej },
			func() extract.Rejection { _, rej := extract.Optional(extract.Extension[tenantID]())(req); return rej },
			func() extract.Rejection { _, rej := extract.Optional(extract.BytesMaxLength(4))(req); return rej },
		}
		for i, check := range checks {
			if rej := check(); rej != nil {
				t.Fatalf("optional extractor %d rejected: %v", i, rej)
			}
		}
	})
}

func serve(h handler.HandlerFunc[*testContext], r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	resp := h(&testContext{w: w, r: r})
	if err := resp(w, r); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
	return w
}

func routed(method, target, body string, pairs ...string) *http.Request {
	req := withParams(newRequest(method, target, body), pairs...)
	return req.Request.WithContext(extension.WithMap(req.Context(), req.Extensions()))
}

func TestHandle1(t *testing.T) {
	t.Parallel()

	h := extract.Handle1(extract.Path1[uint32](),
		func(_ *testContext, id extract.Tuple1[uint32]) handler.Response {
			return response.String("item " + strings.Repeat("*", int(id.V1)))
		})

	w := serve(h, routed(http.MethodGet, "/items/3", "", "id", "3"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "item ***", w.Body.String())

	w = serve(h, routed(http.MethodGet, "/items/abc", "", "id", "abc"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid URL param. Expected something of type `uint32`", w.Body.String())
}

func TestHandle2ShortCircuits(t *testing.T) {
	t.Parallel()

	called := false
	h := extract.Handle2(extract.Query[url1](), extract.Bytes(),
		func(_ *testContext, _ url1, _ []byte) handler.Response {
			called = true
			return response.String("ok")
		})

	w := serve(h, routed(http.MethodPost, "/search", "payload"))
	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Query string was invalid or missing", w.Body.String())
}

func TestHandle3(t *testing.T) {
	t.Parallel()

	var order []string
	traced := func(name string) extract.Extractor[string] {
		return func(*extract.Request) (string, extract.Rejection) {
			order = append(order, name)
			return name, nil
		}
	}

	h := extract.Handle3(traced("a"), traced("b"), traced("c"),
		func(_ *testContext, a, b, c string) handler.Response {
			return response.String(a + b + c)
		})

	w := serve(h, routed(http.MethodGet, "/", ""))
	assert.Equal(t, "abc", w.Body.String())
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestHandle4(t *testing.T) {
	t.Parallel()

	h := extract.Handle4(
		extract.Path1[string](),
		extract.Query[url1](),
		extract.Optional(extract.Extension[tenantID]()),
		extract.JSON[point](),
		func(_ *testContext, name extract.Tuple1[string], q url1, tenant *tenantID, p point) handler.Response {
			assert.Nil(t, tenant)
			return response.String(name.V1 + ":" + q.Q)
		})

	r := routed(http.MethodPost, "/p/alpha?q=x", `{"x":1,"y":2}`, "name", "alpha")
	r.Header.Set("Content-Type", "application/json")
	w := serve(h, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alpha:x", w.Body.String())

	r = routed(http.MethodPost, "/p/alpha?q=x", `{"x":1,"y":2}`, "name", "alpha")
	w = serve(h, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Expected request with `Content-Type: application/json`", w.Body.String())
}

func TestHandleTwoBodyExtractors(t *testing.T) {
	t.Parallel()

	h := extract.Handle2(extract.String(), extract.Bytes(),
		func(_ *testContext, _ string, _ []byte) handler.Response {
			return response.String("unreachable")
		})

	w := serve(h, routed(http.MethodPost, "/", "data"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Cannot have two request body extractors for a single handler", w.Body.String())
}

func TestHandleRecordsRejection(t *testing.T) {
	t.Parallel()

	h := extract.Handle1(extract.BytesMaxLength(2),
		func(_ *testContext, _ []byte) handler.Response {
			return response.NoContent()
		})

	r := routed(http.MethodPost, "/", "abc")
	r.Header.Set("Content-Length", "3")
	w := serve(h, r)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	m, ok := extension.FromContext(r.Context())
	require.True(t, ok)
	rejected, ok := extension.Get[extract.Rejected](m)
	require.True(t, ok)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rejected.Rejection.StatusCode())
}
