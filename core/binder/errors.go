package binder

import "errors"

// Error variables define common binding failures.
var (
	// ErrFailedToDecode indicates URL-encoded values could not be bound to the target.
	ErrFailedToDecode = errors.New("failed to decode url-encoded values")

	// ErrFailedToParseQuery indicates the query string is malformed or does not
	// match the target struct.
	ErrFailedToParseQuery = errors.New("failed to parse query parameters")

	// ErrMissingField indicates a field tagged as required had no value.
	ErrMissingField = errors.New("missing required field")

	// ErrUnsupportedType indicates the target kind cannot be parsed from text.
	ErrUnsupportedType = errors.New("unsupported type")
)
