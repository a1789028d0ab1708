package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. Expected conditions
// (not-found, skip, low confidence) are modelled as values, not errors;
// nothing in this package is fatal to a host process.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// For cache and override lookups this is a normal outcome, not a failure.
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable indicates a transient storage-layer failure.
	// Callers degrade to empty or partial results and log.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrMalformedPayload indicates a corrupt persisted payload.
	// Callers treat it as a cache miss; it never crashes the pipeline.
	ErrMalformedPayload = errors.New("malformed cached payload")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
