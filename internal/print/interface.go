// Package print submits letter bundles to the external print channel, with
// bounded retry on transient failures and a diversion path for recipients
// whose post requires special handling.
package print

import (
	"context"

	casedomain "github.com/allisson/caseflow/internal/caserecord/domain"
	"github.com/allisson/caseflow/internal/errors"
	letterdomain "github.com/allisson/caseflow/internal/letter/domain"
)

var (
	// ErrMalformedDocument is returned when the print channel rejects the
	// bundle content. This is a data problem and is never retried.
	ErrMalformedDocument = errors.Wrap(errors.ErrInvalidInput, "print channel rejected document content")

	// ErrPrintUnavailable is returned once the submission retry budget is
	// exhausted. Callers convert it into a failed-sending case update.
	ErrPrintUnavailable = errors.Wrap(errors.ErrUnavailable, "could not reach print channel")
)

// SubmissionRequest carries one bundle and its metadata to the print channel.
type SubmissionRequest struct {
	CaseID        int64
	LetterType    string
	AppellantName string
	Recipients    []string
	Documents     []letterdomain.Document
}

// PrintClient is the transport to the external print channel. The disabled
// client is a second implementation of the same interface.
type PrintClient interface {
	// Submit sends the bundle and returns an opaque submission identifier.
	Submit(ctx context.Context, request SubmissionRequest) (string, error)
}

// Outcome is the result of one gateway submission: either a submission
// identifier from the print channel or a diversion marker.
type Outcome struct {
	SubmissionID string
	Diverted     bool
}

// Gateway decides between diverting a bundle and submitting it for printing.
type Gateway interface {
	Submit(
		ctx context.Context,
		bundle letterdomain.Bundle,
		snapshot *casedomain.CaseSnapshot,
		category letterdomain.Category,
		eventType string,
	) (Outcome, error)
}
