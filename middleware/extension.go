package middleware

import (
	"github.com/dmitrymomot/extractor/core/extension"
	"github.com/dmitrymomot/extractor/core/handler"
)

// Extension inserts value into the request's extension map before calling the
// next handler, making it available to extract.Extension[T]. A value of the
// same type inserted earlier is replaced.
//
// Types with reference semantics (maps, slices, pointers) are shared by every
// request; implement extract.Cloner to hand each extraction its own copy.
//
//	r.Use(middleware.Extension[*router.Context](db))
func Extension[C handler.Context, T any](value T) handler.Middleware[C] {
	return ExtensionFunc[C](func(handler.Context) (T, bool) {
		return value, true
	})
}

// ExtensionFunc inserts the value produced by fn for every request.
// Nothing is inserted when fn reports false.
func ExtensionFunc[C handler.Context, T any](fn func(ctx handler.Context) (T, bool)) handler.Middleware[C] {
	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			m, ok := extension.FromContext(ctx.Request().Context())
			if !ok {
				return next(ctx)
			}
			if v, ok := fn(ctx); ok {
				extension.Insert(m, v)
			}
			return next(ctx)
		}
	}
}
