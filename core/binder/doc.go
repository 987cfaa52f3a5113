// Package binder decodes URL-encoded values into Go structs.
//
// It implements the URL-encoded form rule used by the query extractor and
// the text parsing used for typed path parameters:
//
//	type SearchRequest struct {
//		Query    string    `query:"q,required"`
//		Page     int       `query:"page"`
//		Tags     []string  `query:"tags"`   // ?tags=go&tags=web
//		Active   *bool     `query:"active"` // optional
//		Owner    uuid.UUID `query:"owner"`  // encoding.TextUnmarshaler
//		Internal string    `query:"-"`      // skipped
//	}
//
//	var req SearchRequest
//	if err := binder.Query()(r, &req); err != nil {
//		// errors.Is(err, binder.ErrFailedToParseQuery) == true
//	}
//
// Fields without a tag bind to their lowercased name. Absent parameters
// leave fields at their zero value unless the tag carries the "required"
// option. Unknown parameters are ignored.
//
// Values are bound verbatim: no trimming, comma splitting or sanitization is
// applied, so decoding is the exact inverse of url.Values.Encode.
//
// # Supported Types
//
//   - string
//   - int, int8, int16, int32, int64
//   - uint, uint8, uint16, uint32, uint64
//   - float32, float64
//   - bool (recognizes: true, false, 1, 0, on, off, yes, no)
//   - encoding.TextUnmarshaler implementations
//   - Slices of any of the above types
//   - Pointers to any of the above types (for optional fields)
package binder
