package domain

import "github.com/allisson/caseflow/internal/errors"

// Domain-specific errors for case record operations.
var (
	// ErrCaseNotFound indicates the requested case does not exist in the case record store.
	ErrCaseNotFound = errors.Wrap(errors.ErrNotFound, "case not found")

	// ErrAppellantRequired indicates a handler was invoked on a case without an appellant.
	ErrAppellantRequired = errors.Wrap(errors.ErrInvalidInput, "appellant is required")

	// ErrDocumentNotFound indicates the referenced evidence document is not on the case.
	ErrDocumentNotFound = errors.Wrap(errors.ErrNotFound, "document not found")

	// ErrOtherPartyNotFound indicates no other party matches the supplied entity id.
	ErrOtherPartyNotFound = errors.Wrap(errors.ErrNotFound, "other party not found")
)
