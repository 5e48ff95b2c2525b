package core

import "context"

// Source defines the contract for supplying the pipeline with its inputs.
// Adhering to this interface keeps the core independent of the underlying
// storage (filesystem, memory, HTTP, ...).
type Source interface {
	// Records returns the full record set. Missing or undecodable data is
	// reported via ErrSourceMissing / ErrMalformedSource wraps.
	Records(ctx context.Context) ([]Record, error)

	// Template returns the raw page template text.
	Template(ctx context.Context) (string, error)
}

// Sink persists a rendered page. Implementations must not leave partial
// output behind on failure.
type Sink interface {
	Write(ctx context.Context, html string) error
}
