// Package client provides the outbound gateways to the external case record
// store and the identity service.
package client

import (
	"context"

	casedomain "github.com/allisson/caseflow/internal/caserecord/domain"
)

// CaseUpdate is one append-event call against a case record: the event type to
// record, operator-visible summary and description, and the new case state.
type CaseUpdate struct {
	EventType   string
	Summary     string
	Description string
	Snapshot    *casedomain.CaseSnapshot
}

// CaseUpdater appends events to the case record store. The store owns its own
// concurrency control; conflicting concurrent updates are its to reject.
type CaseUpdater interface {
	// Update appends an event with the new case state.
	Update(ctx context.Context, caseID int64, update CaseUpdate) error

	// UpdateWithRouting appends an event and attaches supplementary routing
	// metadata keyed by the fixed service identifier.
	UpdateWithRouting(ctx context.Context, caseID int64, update CaseUpdate, routing casedomain.RoutingMetadata) error
}

// TokenProvider obtains service authentication tokens for outbound calls.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}
