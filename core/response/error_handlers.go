package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/extractor/core/handler"
)

// statusCode is implemented by errors that carry their own HTTP status code.
type statusCode interface {
	StatusCode() int
}

// renderer is implemented by errors that know how to write themselves,
// such as extraction rejections.
type renderer interface {
	error
	Render(w http.ResponseWriter, r *http.Request) error
}

// convertToHTTPError converts any error to an HTTPError.
func convertToHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	baseErr, ok := httpErrorsByStatus[status]
	if !ok {
		baseErr = ErrInternalServerError
	}
	return baseErr.WithError(err)
}

// ErrorHandler is the default error handler; it writes plain text.
// Errors that render themselves are rendered as-is. Otherwise HTTPError is
// used directly, a StatusCode() method picks the status, and anything else is a 500.
func ErrorHandler[C handler.Context](ctx C, err error) {
	var rr renderer
	if errors.As(err, &rr) {
		Render(ctx, rr.Render)
		return
	}
	httpErr := convertToHTTPError(err)
	Render(ctx, StringWithStatus(httpErr.Error(), httpErr.Status))
}

// JSONErrorHandler writes errors as JSON HTTPError bodies.
// Self-rendering errors keep their status code and message.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	var rr renderer
	if errors.As(err, &rr) {
		status := http.StatusInternalServerError
		var sc statusCode
		if errors.As(rr, &sc) {
			status = sc.StatusCode()
		}
		httpErr, ok := httpErrorsByStatus[status]
		if !ok {
			httpErr = ErrInternalServerError
		}
		httpErr = httpErr.WithMessage(rr.Error())
		Render(ctx, JSONWithStatus(httpErr, status))
		return
	}
	httpErr := convertToHTTPError(err)
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}
