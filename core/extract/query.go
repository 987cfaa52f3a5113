package extract

import (
	"net/url"

	"github.com/dmitrymomot/extractor/core/binder"
)

// Query decodes the URL query string into T.
//
// T is a struct bound through `query` tags (see package binder), url.Values,
// or map[string]string (first value per key). An absent query string and a
// query string that fails to decode are both reported as QueryStringMissing.
func Query[T any]() Extractor[T] {
	return func(r *Request) (T, Rejection) {
		var v T
		if r.URL == nil || (r.URL.RawQuery == "" && !r.URL.ForceQuery) {
			return v, QueryStringMissing{}
		}

		values, err := url.ParseQuery(r.URL.RawQuery)
		if err != nil {
			return v, QueryStringMissing{}
		}

		if err := decodeQuery(values, &v); err != nil {
			var zero T
			return zero, QueryStringMissing{}
		}
		return v, nil
	}
}

func decodeQuery(values url.Values, dst any) error {
	switch d := dst.(type) {
	case *url.Values:
		*d = values
		return nil
	case *map[string]string:
		m := make(map[string]string, len(values))
		for k, vs := range values {
			if len(vs) > 0 {
				m[k] = vs[0]
			}
		}
		*d = m
		return nil
	default:
		return binder.Decode(values, dst, "query")
	}
}
