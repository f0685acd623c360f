package domain

import (
	"context"
)

// HandlerPriority is the coarse ordering tier of a handler. Handlers run in
// ascending band order; handlers within the same band have no defined
// relative order and must not depend on one another.
type HandlerPriority int

const (
	PriorityEarliest HandlerPriority = iota
	PriorityEarly
	PriorityLate
	PriorityLatest
)

// String returns the band name for logging.
func (p HandlerPriority) String() string {
	switch p {
	case PriorityEarliest:
		return "earliest"
	case PriorityEarly:
		return "early"
	case PriorityLate:
		return "late"
	case PriorityLatest:
		return "latest"
	default:
		return "unknown"
	}
}

// EventHandler is one independent action reacting to case events.
//
// CanHandle decides applicability and fails fast on malformed events rather
// than silently reporting false. Handle is only called after CanHandle
// reported true; invoking it on a non-applicable event returns ErrCannotHandle.
type EventHandler interface {
	Priority() HandlerPriority
	CanHandle(event *CaseEvent) (bool, error)
	Handle(ctx context.Context, event *CaseEvent) error
}
