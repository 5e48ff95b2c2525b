package core

import "errors"

// Common errors.
var (
	// ErrSourceMissing indicates the dataset or template file does not exist.
	ErrSourceMissing = errors.New("source file does not exist")

	// ErrMalformedSource indicates the dataset could not be decoded.
	ErrMalformedSource = errors.New("source data could not be decoded")

	// ErrNoMatches indicates that filtering left no records to render.
	// No output is produced in that case.
	ErrNoMatches = errors.New("no animals match the selected filters")
)
