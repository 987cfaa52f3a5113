package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/extractor/core/handler"
	"github.com/dmitrymomot/extractor/core/logger"
	"github.com/dmitrymomot/extractor/core/response"
)

// Check is a named dependency probe.
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

// Report is the readiness response body.
type Report struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

const (
	statusReady    = "ready"
	statusNotReady = "not_ready"
	checkOK        = "ok"
)

// Liveness reports that the process is serving requests. It never checks dependencies.
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}

// Readiness runs every check and answers 200 with a Report when all pass,
// 503 otherwise. Every check runs even after a failure so the report is complete.
func Readiness[C handler.Context](log *slog.Logger, checks ...Check) handler.HandlerFunc[C] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx C) handler.Response {
		report := Report{Status: statusReady, Checks: make(map[string]string, len(checks))}

		for _, c := range checks {
			if err := c.Probe(ctx); err != nil {
				log.ErrorContext(ctx, "Readiness check failed",
					logger.Component("health"),
					slog.String("check", c.Name),
					logger.Error(err),
				)
				report.Status = statusNotReady
				report.Checks[c.Name] = err.Error()
				continue
			}
			report.Checks[c.Name] = checkOK
		}

		if report.Status != statusReady {
			return response.JSONWithStatus(report, http.StatusServiceUnavailable)
		}
		return response.JSON(report)
	}
}
