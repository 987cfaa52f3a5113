package extension

import (
	"context"
	"reflect"
)

// Map is a per-request store of values keyed by their Go type.
// It is populated by middleware and read by extractors. A Map is not safe for
// concurrent use; extraction for a single request runs sequentially.
type Map struct {
	values map[reflect.Type]any
}

// New creates an empty extension map.
func New() *Map {
	return &Map{}
}

// Len returns the number of stored values.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.values)
}

// Insert stores v under the type T, returning the value it replaced, if any.
func Insert[T any](m *Map, v T) (prev T, replaced bool) {
	key := reflect.TypeFor[T]()
	if m.values == nil {
		m.values = make(map[reflect.Type]any)
	}
	if old, ok := m.values[key]; ok {
		prev, replaced = old.(T)
	}
	m.values[key] = v
	return prev, replaced
}

// Get returns the value stored under the type T.
// The value is returned by copy; the stored value stays in place.
func Get[T any](m *Map) (T, bool) {
	var zero T
	if m == nil || m.values == nil {
		return zero, false
	}
	v, ok := m.values[reflect.TypeFor[T]()]
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Contains reports whether a value of type T is stored.
func Contains[T any](m *Map) bool {
	if m == nil || m.values == nil {
		return false
	}
	_, ok := m.values[reflect.TypeFor[T]()]
	return ok
}

// Remove deletes and returns the value stored under the type T.
func Remove[T any](m *Map) (T, bool) {
	v, ok := Get[T](m)
	if ok {
		delete(m.values, reflect.TypeFor[T]())
	}
	return v, ok
}

type contextKey struct{}

// WithMap returns a copy of ctx carrying m.
func WithMap(ctx context.Context, m *Map) context.Context {
	return context.WithValue(ctx, contextKey{}, m)
}

// FromContext returns the extension map carried by ctx.
func FromContext(ctx context.Context) (*Map, bool) {
	m, ok := ctx.Value(contextKey{}).(*Map)
	return m, ok && m != nil
}
