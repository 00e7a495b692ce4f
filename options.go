package fakesmith

import (
	"log/slog"
)

// Option configures an Engine (e.g. WithSeed, WithLogger).
type Option func(*engineOptions)

type engineOptions struct {
	seed        uint64
	source      *Source
	logger      *slog.Logger
	middlewares []GeneratorMiddleware
}

// WithSeed pins the pseudo-random source to a fixed seed for reproducible
// output. Ignored when WithSource is also given.
func WithSeed(seed uint64) Option {
	return func(o *engineOptions) {
		o.seed = seed
	}
}

// WithSource supplies an explicit generation source, e.g. a shared or
// pre-seeded one. Overrides WithSeed.
func WithSource(src *Source) Option {
	return func(o *engineOptions) {
		o.source = src
	}
}

// WithLogger sets the diagnostic logger. Field-level failures are logged
// here as warnings; the logger never affects response payloads.
func WithLogger(logger *slog.Logger) Option {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMiddleware wraps every generator in the catalog with the given
// middlewares (onion order: first middleware is outermost).
func WithMiddleware(middlewares ...GeneratorMiddleware) Option {
	return func(o *engineOptions) {
		o.middlewares = append(o.middlewares, middlewares...)
	}
}
