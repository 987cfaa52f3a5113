package extract

import (
	"github.com/dmitrymomot/extractor/core/extension"
)

// Cloner is implemented by extension values that must be deep-copied on read.
type Cloner[T any] interface {
	Clone() T
}

// Extension returns the value of type T stored in the request's extension map.
// The stored value is left in place; values implementing Cloner[T] are cloned.
// Absence means expected middleware did not run and is reported as
// MissingExtension (500).
func Extension[T any]() Extractor[T] {
	return func(r *Request) (T, Rejection) {
		v, ok := extension.Get[T](r.extensions)
		if !ok {
			return v, MissingExtension{}
		}
		if c, ok := any(v).(Cloner[T]); ok {
			return c.Clone(), nil
		}
		return v, nil
	}
}
