// Package middleware provides handler.Middleware implementations that feed the
// extraction pipeline and report on it.
//
// All middleware follow the same pattern:
//   - Generic over the handler.Context type
//   - A default constructor and a WithConfig constructor
//   - A Skip function to bypass the middleware per request
//
// # Extensions
//
// Extension inserts a value into the request's extension map so handlers can
// receive it with extract.Extension. Insertion requires the extension map the
// router attaches to every request; without one the middleware does nothing.
//
//	r.Use(middleware.Extension[*router.Context](store))
//
//	r.Get("/items", extract.Handle1(
//		extract.Extension[*Store](),
//		func(ctx *router.Context, store *Store) handler.Response {
//			return response.JSON(store.Items())
//		},
//	))
//
// ExtensionFunc computes the value per request and may decline to insert one.
//
// # Request ID
//
// RequestID assigns every request an identifier, echoes it in the X-Request-ID
// response header and publishes it both in the context (GetRequestID) and as
// an ID extension:
//
//	r.Use(middleware.RequestID[*router.Context]())
//
//	extract.Handle1(extract.Extension[middleware.ID](), func(ctx *router.Context, id middleware.ID) handler.Response {
//		return response.String(id.String())
//	})
//
// # Body Limit
//
// BodyLimit rejects requests whose declared Content-Length exceeds the limit
// with 413 and caps how much of the body any extractor can read. Reading past
// the cap fails with ErrBodyTooLarge, which body extractors surface as the
// cause of extract.FailedToBufferBody.
//
//	r.Use(middleware.BodyLimitWithConfig[*router.Context](middleware.BodyLimitConfig{
//		MaxSize:          1 * middleware.MB,
//		ContentTypeLimit: map[string]int64{"multipart/form-data": 10 * middleware.MB},
//	}))
//
// # Logging
//
// Logging writes one record per request after the response is produced, with
// method, path, status, size and duration. When an extractor rejected the
// request, its status and message are logged under the "rejection" group.
// Responses of 400 and above are logged at warning level, 500 and above at
// error level.
//
//	r.Use(middleware.LoggingWithLogger[*router.Context](log))
package middleware
