// Package zoogen is the composition root of the generator.
//
// It wires the domain layer (record filtering) to the infrastructure
// adapters (filesystem source and sink) and runs the page pipeline:
// load, filter, render, assemble, write.
package zoogen

import (
	"context"
	"fmt"
	"log/slog"

	"zoogen/pkg/adapters/fs"
	"zoogen/pkg/core"
	"zoogen/pkg/render"
)

// Generator runs the full page pipeline for one configuration.
type Generator struct {
	cfg        Config
	source     core.Source
	sink       core.Sink
	serializer render.Serializer
	logger     *slog.Logger
}

// Result is the outcome of one generation run. Message is always set and
// human-readable; the remaining fields are meaningful only when OK is true.
// Callers must check OK before trusting that output was written.
type Result struct {
	OK      bool
	Message string
	Count   int
	Applied core.Filters
}

// New wires a Generator for the given configuration.
func New(cfg Config, opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	source := o.source
	if source == nil {
		source = fs.NewSource(cfg.Data(), cfg.Template(), o.logger)
	}
	sink := o.sink
	if sink == nil {
		sink = fs.NewSink(cfg.Output(), o.logger)
	}

	serializer := render.NewSerializer()
	if o.verbatim || cfg.VerbatimValues {
		serializer.EscapeValues = false
	}

	return &Generator{
		cfg:        cfg,
		source:     source,
		sink:       sink,
		serializer: serializer,
		logger:     o.logger,
	}
}

// Records exposes the loaded record set, e.g. for listing distinct values
// before the user decides on filters.
func (g *Generator) Records(ctx context.Context) ([]core.Record, error) {
	return g.source.Records(ctx)
}

// Run executes the pipeline once. Every failure mode (missing source,
// malformed data, empty filter result, write error) is folded into the
// returned Result instead of escaping as an error; no partial output is
// ever left behind.
func (g *Generator) Run(ctx context.Context, filters core.Filters) Result {
	records, err := g.source.Records(ctx)
	if err != nil {
		return failure(err)
	}

	tmpl, err := g.source.Template(ctx)
	if err != nil {
		return failure(err)
	}

	matched := filters.Apply(records)
	if len(matched) == 0 {
		return failure(noMatchesError(filters))
	}

	fragments := make([]string, 0, len(matched))
	for _, r := range matched {
		fragments = append(fragments, g.serializer.Fragment(r))
	}

	if !render.HasPlaceholder(tmpl) && g.logger != nil {
		g.logger.Debug("template has no placeholder, output equals template",
			"placeholder", render.Placeholder)
	}
	page := render.Assemble(tmpl, fragments)

	if err := g.sink.Write(ctx, page); err != nil {
		return failure(err)
	}

	applied := filters.Applied()
	msg := fmt.Sprintf("generated page with %d animals", len(matched))
	if len(applied) > 0 {
		msg += " (" + applied.Describe() + ")"
	}
	if g.logger != nil {
		g.logger.Info("page generated", "animals", len(matched), "output", g.cfg.Output())
	}

	return Result{OK: true, Message: msg, Count: len(matched), Applied: applied}
}

func noMatchesError(filters core.Filters) error {
	if applied := filters.Applied(); len(applied) > 0 {
		return fmt.Errorf("%w (%s)", core.ErrNoMatches, applied.Describe())
	}
	return core.ErrNoMatches
}

func failure(err error) Result {
	return Result{Message: err.Error()}
}
