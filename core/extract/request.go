package extract

import (
	"io"
	"net/http"

	"github.com/dmitrymomot/extractor/core/extension"
)

// Request is the view of an HTTP request that extractors operate on.
// It embeds the underlying *http.Request and carries the request's extension map.
//
// A Request is used by one goroutine at a time: the dispatch logic runs the
// extractors of a handler one after another against the same Request.
type Request struct {
	*http.Request
	extensions *extension.Map
}

// NewRequest wraps r for extraction. The extension map attached to the request
// context by the router is reused, so single-ownership markers and values
// inserted by middleware are shared by every Request built from r.
// Without one, a fresh map is used.
func NewRequest(r *http.Request) *Request {
	m, ok := extension.FromContext(r.Context())
	if !ok {
		m = extension.New()
	}
	return &Request{Request: r, extensions: m}
}

// Extensions returns the request's extension map.
func (r *Request) Extensions() *extension.Map {
	return r.extensions
}

// bodyTaken marks that the body has been moved out of the request.
type bodyTaken struct{}

// TakeBody moves the body out of the request, leaving http.NoBody in its place.
// Only the first call succeeds; later calls return BodyAlreadyTaken.
func (r *Request) TakeBody() (io.ReadCloser, Rejection) {
	if _, taken := extension.Insert(r.extensions, bodyTaken{}); taken {
		return nil, BodyAlreadyTaken{}
	}

	body := r.Body
	r.Body = http.NoBody
	if body == nil {
		body = http.NoBody
	}
	return body, nil
}

// bufferBody takes the body and reads it fully into memory.
func (r *Request) bufferBody() ([]byte, Rejection) {
	body, rej := r.TakeBody()
	if rej != nil {
		return nil, rej
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, FailedToBufferBody{Err: err}
	}
	return data, nil
}
