// Package zoogen renders static HTML catalog pages from structured animal
// datasets.
//
// The pipeline is purely functional: a dataset (JSON or YAML) is loaded
// into records, narrowed by an ordered set of field/value constraints,
// serialized into HTML card fragments, and substituted into a template via
// a fixed placeholder. The root package is a thin facade over the layered
// packages:
//
//   - pkg/core: records, field resolution, the filter engine
//   - pkg/render: fragment serializer and page assembler
//   - pkg/adapters/fs: filesystem source, atomic sink, discovery, watching
//   - pkg/zoogen: configuration and the pipeline composition root
//
// Usage:
//
//	res, err := zoogen.Generate(ctx, "./site",
//		zoogen.Filters{}.Set("diet", "Herbivore"),
//		zoogen.WithLogger(logger),
//	)
//	if err != nil {
//		// configuration problem
//	}
//	if !res.OK {
//		// nothing was written; res.Message explains why
//	}
package zoogen
