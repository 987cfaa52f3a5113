package extract

import (
	"net/http"

	"github.com/dmitrymomot/extractor/core/response"
)

// Rejection is returned by an extractor that could not produce its value.
// Every rejection knows its status code and can render itself as a response.
type Rejection interface {
	error
	StatusCode() int
	Render(w http.ResponseWriter, r *http.Request) error
}

func render(w http.ResponseWriter, r *http.Request, rej Rejection) error {
	return response.StringWithStatus(rej.Error(), rej.StatusCode())(w, r)
}

// QueryStringMissing is returned when the query string is absent or cannot be decoded.
type QueryStringMissing struct{}

func (QueryStringMissing) Error() string   { return "Query string was invalid or missing" }
func (QueryStringMissing) StatusCode() int { return http.StatusBadRequest }
func (e QueryStringMissing) Render(w http.ResponseWriter, r *http.Request) error {
	return render(w, r, e)
}

// InvalidJSONBody is returned when the buffered body is not valid JSON for the target type.
type InvalidJSONBody struct {
	Err error
}

func (e InvalidJSONBody) Error() string {
	return "Failed to parse the response body as JSON: " + e.Err.Error()
}
func (InvalidJSONBody) StatusCode() int { return http.StatusBadRequest }
func (e InvalidJSONBody) Unwrap() error { return e.Err }
func (e InvalidJSONBody) Render(w http.ResponseWriter, r *http.Request) error {
	return render(w, r, e)
}

// MissingJSONContentType is returned when Content-Type does not start with application/json.
type MissingJSONContentType struct{}

func (MissingJSONContentType) Error() string {
	return "Expected request with `Content-Type: application/json`"
}
func (MissingJSONContentType) StatusCode() int { return http.StatusBadRequest }
func (e MissingJSONContentType) Render(w http.ResponseWriter, r *http.Request) error {
	return render(w, r, e)
}

// MissingExtension is returned when no value of the requested type was stored by middleware.
type MissingExtension struct{}

func (MissingExtension) Error() string   { return "Missing request extension" }
func (MissingExtension) StatusCode() int { return http.StatusInternalServerError }
func (e MissingExtension) Render(w http.ResponseWriter, r *http.Request) error {
	return render(w, r, e)
}

// FailedToBufferBody is returned when reading the body into memory fails.
type FailedToBufferBody struct {
	Err error
}

func (e FailedToBufferBody) Error() string {
	return "Failed to buffer the request body: " + e.Err.Error()
}
func (FailedToBufferBody) StatusCode() int { return http.StatusBadRequest }
func (e FailedToBufferBody) Unwrap() error { return e.Err }
func (e FailedToBufferBody) Render(w http.ResponseWriter, r *http.Request) error {
	return render(w, r, e)
}

// InvalidUTF8 is returned when the body is not valid UTF-8.
type InvalidUTF8 struct {
	Err error
}

func (e InvalidUTF8) Error() string {
	return "Response body didn't contain valid UTF-8: " + e.Err.Error()
}
func (InvalidUTF8) StatusCode() int { return http.StatusBadRequest }
func (e InvalidUTF8) Unwrap() error { return e.Err }
func (e InvalidUTF8) Render(w http.ResponseWriter, r *http.Request) error {
	return render(w, r, e)
}

// BodyAlreadyTaken is returned when a second extractor in the same handler asks for the body.
type BodyAlreadyTaken struct{}

func (BodyAlreadyTaken) Error() string {
	return "Cannot have two request body extractors for a single handler"
}
func (BodyAlreadyTaken) StatusCode() int { return http.StatusInternalServerError }
func (e BodyAlreadyTaken) Render(w http.ResponseWriter, r *http.Request) error {
	return render(w, r, e)
}

// PayloadTooLarge is returned when the declared Content-Length exceeds the bound.
type PayloadTooLarge struct{}

func (PayloadTooLarge) Error() string   { return "Request payload is too large" }
func (PayloadTooLarge) StatusCode() int { return http.StatusRequestEntityTooLarge }
func (e PayloadTooLarge) Render(w http.ResponseWriter, r *http.Request) error {
	return render(w, r, e)
}

// LengthRequired is returned when a bounded extractor finds no usable Content-Length header.
type LengthRequired struct{}

func (LengthRequired) Error() string   { return "Content length header is required" }
func (LengthRequired) StatusCode() int { return http.StatusLengthRequired }
func (e LengthRequired) Render(w http.ResponseWriter, r *http.Request) error {
	return render(w, r, e)
}

// MissingRouteParams is returned when the path-parameter list is absent, already
// taken, or does not have the arity the handler asked for. It points at a
// mismatch between route patterns and handlers rather than at client input.
type MissingRouteParams struct{}

func (MissingRouteParams) Error() string   { return "No url params found for matched route" }
func (MissingRouteParams) StatusCode() int { return http.StatusInternalServerError }
func (e MissingRouteParams) Render(w http.ResponseWriter, r *http.Request) error {
	return render(w, r, e)
}

// InvalidURLParam is returned when a path segment cannot be parsed as the requested type.
type InvalidURLParam struct {
	TypeName string
}

func (e InvalidURLParam) Error() string {
	return "Invalid URL param. Expected something of type `" + e.TypeName + "`"
}
func (InvalidURLParam) StatusCode() int { return http.StatusBadRequest }
func (e InvalidURLParam) Render(w http.ResponseWriter, r *http.Request) error {
	return render(w, r, e)
}

// Boxed is a type-erased rejection. Extractors that can fail in several ways
// return their concrete rejections boxed so callers see one type; the
// concrete rejection stays reachable through errors.As.
type Boxed struct {
	rejection Rejection
}

// Box wraps rej in a Boxed rejection. Nil stays nil and boxing is idempotent.
func Box(rej Rejection) Rejection {
	switch r := rej.(type) {
	case nil:
		return nil
	case *Boxed:
		return r
	default:
		return &Boxed{rejection: rej}
	}
}

func (b *Boxed) Error() string   { return b.rejection.Error() }
func (b *Boxed) StatusCode() int { return b.rejection.StatusCode() }
func (b *Boxed) Unwrap() error   { return b.rejection }

// Render delegates to the boxed rejection.
func (b *Boxed) Render(w http.ResponseWriter, r *http.Request) error {
	return b.rejection.Render(w, r)
}
