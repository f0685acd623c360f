package domain

import (
	"github.com/allisson/caseflow/internal/errors"
)

var (
	// ErrDeliveryRecordNotFound is returned when a delivery record does not exist
	ErrDeliveryRecordNotFound = errors.Wrap(errors.ErrNotFound, "delivery record not found")

	// ErrCorrespondenceNotFound is returned when a correspondence entry does not exist
	ErrCorrespondenceNotFound = errors.Wrap(errors.ErrNotFound, "correspondence not found")
)
