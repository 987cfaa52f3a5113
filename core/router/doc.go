// Package router provides a generic HTTP router on top of net/http.ServeMux
// pattern matching, with middleware chaining, route groups and per-request
// setup for the extract package.
//
// # Basic Usage
//
//	r := router.New[*router.Context]()
//
//	r.Get("/users", listUsers)
//	r.Post("/users", createUser)
//	r.Get("/users/{id}", getUser)
//	r.Get("/files/{path...}", serveFile)
//
//	http.ListenAndServe(":8080", r)
//
// Patterns use ServeMux wildcard syntax. Unlike ServeMux, a pattern ending in
// "/" matches only that exact path, and method dispatch is done by the router
// so that a path registered for other methods answers 405 with an Allow header.
// HEAD falls back to the GET handler.
//
// # Extraction
//
// For every matched request the router installs a fresh extension map in the
// request context and stores the matched parameters in it, in pattern order,
// as a take-once slot. Extractors built from the same request share them:
//
//	r.Get("/users/{id}/posts/{slug}", extract.Handle1(
//		extract.Path2[uint64, string](),
//		func(ctx *router.Context, p extract.Tuple2[uint64, string]) handler.Response {
//			id, slug := p.Unpack()
//			return response.JSON(findPost(id, slug))
//		},
//	))
//
// Context.Param reads parameters by name and is unaffected by extraction.
//
// # Middleware
//
// Use adds middleware for every route and must be called before routes are
// registered. With, Group and Route create inline routers whose middleware
// only wraps the routes registered through them:
//
//	r.Use(middleware.RequestID[*router.Context]())
//
//	r.Route("/admin", func(admin router.Router[*router.Context]) {
//		admin.Use(requireAdmin)
//		admin.Get("/stats", stats)
//	})
//
// # Errors
//
// Unmatched paths produce ErrNotFound and unsupported methods
// ErrMethodNotAllowed; both carry StatusCode(). Errors returned by a Response
// and recovered panics (as PanicError) go to the error handler configured with
// WithErrorHandler. The default handler lets errors with a Render method
// (extraction rejections) write themselves and otherwise writes plain text.
package router
