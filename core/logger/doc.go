// Package logger builds log/slog loggers and provides attribute helpers.
//
//	log := logger.New(logger.WithDevelopment("extractord")) // colored, debug
//	log := logger.New(logger.WithProduction("extractord"))  // JSON, info
//
// Development output is rendered by github.com/lmittmann/tint.
//
// Attribute helpers return an empty attribute for nil input, so they can be
// passed without checks:
//
//	log.Warn("request rejected",
//		logger.Method(r.Method),
//		logger.Path(r.URL.Path),
//		logger.Rejection(rej),
//		logger.Error(err),
//	)
//
// WithContextExtractors adds attributes from the context given to the
// *Context logging methods, such as a request ID set by middleware.
package logger
