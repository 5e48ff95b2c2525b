package zoogen

import (
	"log/slog"

	"zoogen/pkg/core"
)

// options holds the internal configuration for the generator.
type options struct {
	logger   *slog.Logger
	source   core.Source
	sink     core.Sink
	verbatim bool
}

// Option defines a functional option for configuring the generator.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger for the generator and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSource injects a custom record source (e.g. mock, HTTP).
// If provided, the default filesystem source is skipped.
func WithSource(source core.Source) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithSink injects a custom page sink. If provided, the default
// filesystem sink is skipped.
func WithSink(sink core.Sink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

// WithVerbatimValues disables HTML escaping of field values.
func WithVerbatimValues(verbatim bool) Option {
	return func(o *options) {
		o.verbatim = verbatim
	}
}
