package binder

import (
	"fmt"
	"net/http"
	"net/url"
)

// Query creates a query parameter binder function.
//
// It supports struct tags for custom parameter names:
//   - `query:"name"` - binds to query parameter "name"
//   - `query:"-"` - skips the field
//   - `query:"name,required"` - fails when the parameter is absent
//
// Supported types:
//   - Basic types: string, int*, uint*, float32, float64, bool
//   - Types implementing encoding.TextUnmarshaler (uuid.UUID, time.Time, ...)
//   - Slices of the above for multi-value parameters
//   - Pointers for optional fields
//
// Unlike url.URL.Query, malformed escapes are reported instead of silently dropped.
func Query() Binder {
	return func(r *http.Request, v any) error {
		values, err := url.ParseQuery(r.URL.RawQuery)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseQuery, err)
		}
		return bindToStruct(v, "query", values, ErrFailedToParseQuery)
	}
}
