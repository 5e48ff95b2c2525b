package zoogen

import (
	"context"
	"log/slog"

	"zoogen/pkg/core"
	pipeline "zoogen/pkg/zoogen"
)

// Version exposes the version of the library.
const Version = "0.2.0"

// --- Types ---

// Record is one animal's structured attributes.
type Record = core.Record

// Characteristics is the attribute map nested under a record.
type Characteristics = core.Characteristics

// Constraint is a single field/value narrowing.
type Constraint = core.Constraint

// Filters is an ordered conjunction of constraints.
type Filters = core.Filters

// Result is the outcome of one generation run.
type Result = pipeline.Result

// Config holds the file locations for a generation run.
type Config = pipeline.Config

// Wildcard is the constraint value meaning "no narrowing".
const Wildcard = core.Wildcard

// --- Configuration ---

// Option defines a functional option for configuring the generator.
type Option = pipeline.Option

// WithLogger sets the logger for the generator and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return pipeline.WithLogger(logger)
}

// WithSource injects a custom record source.
func WithSource(source core.Source) Option {
	return pipeline.WithSource(source)
}

// WithSink injects a custom page sink.
func WithSink(sink core.Sink) Option {
	return pipeline.WithSink(sink)
}

// WithVerbatimValues disables HTML escaping of field values.
func WithVerbatimValues(verbatim bool) Option {
	return pipeline.WithVerbatimValues(verbatim)
}

// --- Entry points ---

// Generate loads the layered configuration rooted at base and runs the
// pipeline once. The returned Result carries the success flag and message;
// the error covers configuration problems only.
func Generate(ctx context.Context, base string, filters Filters, opts ...Option) (Result, error) {
	cfg, err := pipeline.LoadConfig(base)
	if err != nil {
		return Result{}, err
	}
	return pipeline.New(cfg, opts...).Run(ctx, filters), nil
}

// UniqueValues returns the sorted distinct values of a field across records.
func UniqueValues(records []Record, field string) []string {
	return core.UniqueValues(records, field)
}
