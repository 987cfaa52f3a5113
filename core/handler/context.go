package handler

import (
	"context"
	"net/http"
)

// Context defines the contract for request contexts passed to handlers.
// router.Context is the default implementation; extractors only need Request.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}
