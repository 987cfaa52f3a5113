// Package handler defines the handler, response and middleware types shared by
// the router, the response helpers and the extractor dispatch adapters.
//
// A handler receives a context and returns a Response; rendering is deferred
// until the router calls the Response with the writer:
//
//	type Response func(w http.ResponseWriter, r *http.Request) error
//	type HandlerFunc[C Context] func(ctx C) Response
//	type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
//
// Handlers built with the extract package take typed parameters instead of a
// context alone:
//
//	show := extract.Handle2(
//		extract.Path1[uint32](),
//		extract.Optional(extract.Query[Filter]()),
//		func(ctx *router.Context, id extract.Tuple1[uint32], f *Filter) handler.Response {
//			return response.JSON(lookup(id.V1, f))
//		},
//	)
//
// # Middleware
//
// Chain composes middleware so the first one listed runs first:
//
//	h := handler.Chain(show, logging, auth)
//
// A middleware may return a Response without calling next to short-circuit the
// request, for example to reject unauthenticated callers.
package handler
