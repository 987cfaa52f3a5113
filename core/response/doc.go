// Package response provides handler.Response constructors and the error
// handlers used by the router.
//
// Responses are functions; nothing is written until the router invokes them:
//
//	func show(ctx *router.Context) handler.Response {
//		return response.JSON(item)
//	}
//
// # Errors
//
// A handler returns response.Error(err) to delegate to the router's error
// handler. ErrorHandler writes plain text and JSONErrorHandler writes an
// HTTPError body. Both give precedence to errors with a
// Render(http.ResponseWriter, *http.Request) error method, so an extraction
// rejection returned as an error keeps its own status and message:
//
//	_, rej := extract.JSON[Order]()(req)
//	if rej != nil {
//		return response.Error(rej)
//	}
//
// Other errors are mapped through HTTPError, a StatusCode() int method, or
// default to 500 Internal Server Error.
package response
