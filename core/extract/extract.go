package extract

import (
	"github.com/dmitrymomot/extractor/core/extension"
	"github.com/dmitrymomot/extractor/core/handler"
)

// Extractor produces a typed value from a request, or a rejection explaining
// why it could not. Extractors may read headers and extensions and may take
// the body; they never panic on client input.
type Extractor[T any] func(r *Request) (T, Rejection)

// FromRequest is implemented (with a pointer receiver) by types that know how
// to fill themselves from a request. Use Of to turn such a type into an Extractor.
type FromRequest interface {
	FromRequest(r *Request) Rejection
}

// Of returns an Extractor for a type implementing FromRequest.
//
//	type Tenant struct{ ID string }
//
//	func (t *Tenant) FromRequest(r *extract.Request) extract.Rejection {
//		t.ID = r.Header.Get("X-Tenant")
//		if t.ID == "" {
//			return extract.MissingExtension{}
//		}
//		return nil
//	}
//
//	tenant := extract.Of[Tenant]()
func Of[T any, P interface {
	*T
	FromRequest
}]() Extractor[T] {
	return func(r *Request) (T, Rejection) {
		var v T
		if rej := P(&v).FromRequest(r); rej != nil {
			var zero T
			return zero, rej
		}
		return v, nil
	}
}

// Optional makes ex infallible: a rejection is discarded and reported as nil.
// Anything ex consumed before rejecting (the body, the url params) stays consumed.
func Optional[T any](ex Extractor[T]) Extractor[*T] {
	return func(r *Request) (*T, Rejection) {
		v, rej := ex(r)
		if rej != nil {
			return nil, nil
		}
		return &v, nil
	}
}

// Reject converts a rejection into a handler response.
func Reject(rej Rejection) handler.Response {
	return rej.Render
}

// Rejected is stored in the extension map by the Handle adapters when an
// extractor short-circuits the handler, so middleware can report it.
type Rejected struct {
	Rejection Rejection
}

func (r *Request) reject(rej Rejection) handler.Response {
	extension.Insert(r.extensions, Rejected{Rejection: rej})
	return Reject(rej)
}

// Handle1 adapts a handler taking one extracted parameter.
// A rejection short-circuits the handler and becomes the response.
func Handle1[C handler.Context, A any](
	a Extractor[A],
	fn func(ctx C, a A) handler.Response,
) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		r := NewRequest(ctx.Request())
		va, rej := a(r)
		if rej != nil {
			return r.reject(rej)
		}
		return fn(ctx, va)
	}
}

// Handle2 adapts a handler taking two extracted parameters, extracted in order.
func Handle2[C handler.Context, A, B any](
	a Extractor[A],
	b Extractor[B],
	fn func(ctx C, a A, b B) handler.Response,
) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		r := NewRequest(ctx.Request())
		va, rej := a(r)
		if rej != nil {
			return r.reject(rej)
		}
		vb, rej := b(r)
		if rej != nil {
			return r.reject(rej)
		}
		return fn(ctx, va, vb)
	}
}

// Handle3 adapts a handler taking three extracted parameters, extracted in order.
func Handle3[C handler.Context, A, B, D any](
	a Extractor[A],
	b Extractor[B],
	d Extractor[D],
	fn func(ctx C, a A, b B, d D) handler.Response,
) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		r := NewRequest(ctx.Request())
		va, rej := a(r)
		if rej != nil {
			return r.reject(rej)
		}
		vb, rej := b(r)
		if rej != nil {
			return r.reject(rej)
		}
		vd, rej := d(r)
		if rej != nil {
			return r.reject(rej)
		}
		return fn(ctx, va, vb, vd)
	}
}

// Handle4 adapts a handler taking four extracted parameters, extracted in order.
func Handle4[C handler.Context, A, B, D, E any](
	a Extractor[A],
	b Extractor[B],
	d Extractor[D],
	e Extractor[E],
	fn func(ctx C, a A, b B, d D, e E) handler.Response,
) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		r := NewRequest(ctx.Request())
		va, rej := a(r)
		if rej != nil {
			return r.reject(rej)
		}
		vb, rej := b(r)
		if rej != nil {
			return r.reject(rej)
		}
		vd, rej := d(r)
		if rej != nil {
			return r.reject(rej)
		}
		ve, rej := e(r)
		if rej != nil {
			return r.reject(rej)
		}
		return fn(ctx, va, vb, vd, ve)
	}
}
