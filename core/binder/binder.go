package binder

import (
	"net/http"
	"net/url"
)

// Binder represents a function that binds HTTP request data to a Go value.
type Binder func(r *http.Request, v any) error

// Decode binds URL-encoded values into the struct pointed to by v.
// tagName selects the struct tag holding parameter names (for example "query").
func Decode(values url.Values, v any, tagName string) error {
	return bindToStruct(v, tagName, values, ErrFailedToDecode)
}
