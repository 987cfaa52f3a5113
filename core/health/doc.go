// Package health provides liveness and readiness handlers.
//
//	r.Get("/health/live", health.Liveness[*router.Context])
//	r.Get("/health/ready", health.Readiness[*router.Context](log,
//		health.Check{Name: "store", Probe: store.Ping},
//	))
//
// Readiness answers 503 with the failing checks when any probe returns an error.
package health
