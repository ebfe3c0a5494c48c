package domain

import "errors"

// Sentinel errors for the dataroom core - use with errors.Is().
// Repositories and services wrap these with fmt.Errorf("...: %w", ...)
// so the handler layer can map them to stable HTTP status codes.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrTooLarge        = errors.New("payload too large")
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrContentMissing indicates a file's metadata exists but its blob is
	// gone from the content store. Distinct from ErrNotFound so the handler
	// can answer 410 instead of 404.
	ErrContentMissing = errors.New("file content missing")

	// ErrInvariant indicates corrupted tree state (a cyclic parent chain).
	// Should never occur in correct operation; surfaced as an internal error.
	ErrInvariant = errors.New("tree invariant violated")
)
