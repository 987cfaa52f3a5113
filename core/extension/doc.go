// Package extension provides a type-keyed store for request-scoped values.
//
// Middleware places values into the store and extractors read them back by
// type. Each Go type occupies one slot, so distinct values of the same
// underlying type should use named types:
//
//	type TenantID string
//
//	m := extension.New()
//	extension.Insert(m, TenantID("acme"))
//
//	id, ok := extension.Get[TenantID](m)
//
// The router attaches a fresh Map to every request context; use FromContext
// to reach it from middleware:
//
//	if m, ok := extension.FromContext(ctx); ok {
//		extension.Insert(m, currentUser)
//	}
//
// A Map is not safe for concurrent use.
package extension
