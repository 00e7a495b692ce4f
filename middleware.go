package fakesmith

import (
	"log/slog"
	"time"
)

// GeneratorMiddleware wraps a GeneratorFunc with cross-cutting behavior.
// The tag identifies the catalog entry being wrapped.
type GeneratorMiddleware func(tag string, next GeneratorFunc) GeneratorFunc

// TraceMiddleware returns a middleware that logs each generator invocation
// at debug level with its duration. Useful when diagnosing a misbehaving
// field type without touching the response payload.
func TraceMiddleware(logger *slog.Logger) GeneratorMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(tag string, next GeneratorFunc) GeneratorFunc {
		return func(o GenOptions) any {
			start := time.Now()
			v := next(o)
			logger.Debug("generator invoked", "tag", tag, "duration", time.Since(start))
			return v
		}
	}
}

// applyMiddlewares wraps every catalog entry, onion order: the first
// middleware is outermost.
func applyMiddlewares(catalog map[string]GeneratorFunc, middlewares []GeneratorMiddleware) {
	if len(middlewares) == 0 {
		return
	}
	for tag, gen := range catalog {
		wrapped := gen
		for i := len(middlewares) - 1; i >= 0; i-- {
			wrapped = middlewares[i](tag, wrapped)
		}
		catalog[tag] = wrapped
	}
}
