package domain

import (
	"github.com/allisson/caseflow/internal/errors"
)

var (
	// ErrNilEvent is returned when a handler is asked about a nil event.
	ErrNilEvent = errors.Wrap(errors.ErrInvalidInput, "case event is nil")

	// ErrStageMissing is returned when an event carries no callback stage.
	ErrStageMissing = errors.Wrap(errors.ErrInvalidInput, "callback stage is missing")

	// ErrCannotHandle is returned when Handle is invoked on an event the
	// handler does not apply to.
	ErrCannotHandle = errors.Wrap(errors.ErrInvalidInput, "handler cannot handle event")

	// ErrRequiredFieldMissing is returned when a handler's required case
	// fields are absent. It propagates and aborts dispatch for the event.
	ErrRequiredFieldMissing = errors.Wrap(errors.ErrInvalidInput, "required case field missing")
)
