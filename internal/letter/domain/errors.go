package domain

import "github.com/allisson/caseflow/internal/errors"

// Domain-specific errors for letter addressing.
var (
	// ErrJointPartyAbsent indicates a joint party letter was requested on a case without one.
	ErrJointPartyAbsent = errors.Wrap(errors.ErrInvalidInput, "joint party is not present on the case")

	// ErrDepartmentAddressNotFound indicates no physical address is held for the
	// (benefit type, issuing office) combination. This is a data-quality error
	// and must not be retried.
	ErrDepartmentAddressNotFound = errors.Wrap(errors.ErrNotFound, "department address not found")

	// ErrUnknownCategory indicates a letter category outside the closed set.
	ErrUnknownCategory = errors.Wrap(errors.ErrInvalidInput, "unknown letter category")
)
