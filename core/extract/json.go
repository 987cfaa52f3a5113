package extract

import (
	"encoding/json"
	"net/http"
	"strings"
)

const contentTypeJSON = "application/json"

// JSON buffers the body and decodes it as JSON into T.
//
// The Content-Type header must start with "application/json" (case-sensitive),
// so "application/json; charset=utf-8" is accepted and "Application/JSON" is not.
// A wrong content type is rejected before the body is touched.
// Rejections are boxed: MissingJSONContentType, BodyAlreadyTaken,
// FailedToBufferBody or InvalidJSONBody.
func JSON[T any]() Extractor[T] {
	return func(r *Request) (T, Rejection) {
		var v T
		if !hasContentType(r.Request, contentTypeJSON) {
			return v, Box(MissingJSONContentType{})
		}

		data, rej := r.bufferBody()
		if rej != nil {
			return v, Box(rej)
		}

		if err := json.Unmarshal(data, &v); err != nil {
			var zero T
			return zero, Box(InvalidJSONBody{Err: err})
		}
		return v, nil
	}
}

func hasContentType(r *http.Request, expected string) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), expected)
}
