// Package extract turns parts of an HTTP request into typed handler parameters.
//
// A handler declares what it needs as a list of extractors. Each extractor
// reads one part of the request (query string, JSON body, raw bytes, a path
// segment, a value placed by middleware) and returns either the typed value or
// a Rejection. The first rejection short-circuits the handler and is rendered
// as the response, so extractor authors never write response code.
//
// # Handlers
//
//	type CreateItem struct {
//		Name string `json:"name"`
//	}
//
//	type ListFilter struct {
//		Page int `query:"page"`
//	}
//
//	r := router.New[*router.Context]()
//
//	r.Post("/lists/{list}/items", extract.Handle3(
//		extract.Path1[uint32](),
//		extract.Extension[middleware.RequestID](),
//		extract.JSON[CreateItem](),
//		func(ctx *router.Context, list extract.Tuple1[uint32], id middleware.RequestID, in CreateItem) handler.Response {
//			return response.JSON(map[string]any{"list": list.V1, "name": in.Name})
//		},
//	))
//
//	r.Get("/items", extract.Handle1(
//		extract.Optional(extract.Query[ListFilter]()),
//		func(ctx *router.Context, f *ListFilter) handler.Response {
//			// f is nil when the query string is absent or malformed
//			return response.NoContent()
//		},
//	))
//
// # Single-Ownership Resources
//
// The body and the path-parameter list can each be taken once per request.
// A second body extractor in the same handler fails with BodyAlreadyTaken
// (500) and a second path-parameter extractor with MissingRouteParams (500).
// Both indicate a handler written with two extractors competing for the same
// resource.
//
// # Rejections
//
// Every rejection is a small named type with a fixed status code and message.
// Extractors that can fail in several ways return their rejection wrapped in
// *Boxed; use errors.As to reach the concrete type:
//
//	_, rej := extract.JSON[CreateItem]()(req)
//	var ct extract.MissingJSONContentType
//	if errors.As(rej, &ct) {
//		// wrong content type
//	}
//
// # Custom Extractors
//
// Any function with the Extractor signature is an extractor. Types that fill
// themselves implement FromRequest and are adapted with Of.
package extract
