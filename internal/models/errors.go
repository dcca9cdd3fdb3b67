package models

import "errors"

// Sentinel errors shared across services, repositories and handlers.
// Handlers map these to HTTP status codes with errors.Is.
var (
	// ErrNotFound means no document matched the given identifier.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName means a category with the same name already exists.
	ErrDuplicateName = errors.New("category name already exists")

	// ErrEmptyUpdate means a partial update payload contained no recognized fields.
	ErrEmptyUpdate = errors.New("no fields to update")

	// ErrInvalidRecord means a stored document is missing a required field and
	// cannot be normalized. Such records are skipped during listings, not surfaced.
	ErrInvalidRecord = errors.New("invalid stored record")

	// ErrUnauthorized means the presented admin credentials did not match.
	ErrUnauthorized = errors.New("invalid credentials")

	// ErrUploadFailed means the asset upload returned no usable URL.
	ErrUploadFailed = errors.New("upload returned no URL")

	// ErrUpstreamTimeout means an outbound store or upload call exceeded its deadline.
	// The operation may be retried by the caller.
	ErrUpstreamTimeout = errors.New("upstream call timed out")
)
