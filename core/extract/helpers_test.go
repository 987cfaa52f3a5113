package extract_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/dmitrymomot/extractor/core/extract"
)

func newRequest(method, target, body string) *extract.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	return extract.NewRequest(httptest.NewRequest(method, target, rd))
}

func withParams(req *extract.Request, pairs ...string) *extract.Request {
	params := make([]extract.URLParam, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		params = append(params, extract.URLParam{Name: pairs[i], Value: pairs[i+1]})
	}
	extract.SetURLParams(req.Extensions(), params)
	return req
}

// failingBody errors on first read.
type failingBody struct{}

func (failingBody) Read([]byte) (int, error) { return 0, errors.New("connection reset") }
func (failingBody) Close() error             { return nil }

// trackingBody records whether it was read.
type trackingBody struct {
	io.Reader
	read bool
}

func (b *trackingBody) Read(p []byte) (int, error) {
	b.read = true
	return b.Reader.Read(p)
}

func (b *trackingBody) Close() error { return nil }

// testContext is a minimal handler.Context for exercising dispatch adapters.
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
