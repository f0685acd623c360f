package handlers

import (
	"context"
	"log/slog"

	"github.com/allisson/caseflow/internal/callback/domain"
	"github.com/allisson/caseflow/internal/caserecord/client"
)

// creationRouteValidAppeal is the creation route of appeals that went through
// full validation; only those are forwarded to the department.
const creationRouteValidAppeal = "validAppeal"

// SentToDepartmentHandler appends a "department notified" event, carrying the
// office routing metadata, once a valid appeal is sent to the department.
type SentToDepartmentHandler struct {
	caseUpdater client.CaseUpdater
	logger      *slog.Logger
}

// NewSentToDepartmentHandler creates a new SentToDepartmentHandler
func NewSentToDepartmentHandler(caseUpdater client.CaseUpdater, logger *slog.Logger) *SentToDepartmentHandler {
	return &SentToDepartmentHandler{
		caseUpdater: caseUpdater,
		logger:      logger,
	}
}

// Priority returns the handler's dispatch band.
func (h *SentToDepartmentHandler) Priority() domain.HandlerPriority {
	return domain.PriorityEarly
}

// CanHandle reports whether the event is a post-submit send-to-department for
// a case created through the valid appeal route.
func (h *SentToDepartmentHandler) CanHandle(event *domain.CaseEvent) (bool, error) {
	if err := validateEvent(event); err != nil {
		return false, err
	}

	if event.EventType != domain.EventSentToDepartment || event.Stage != domain.StagePostSubmit {
		return false, nil
	}

	if event.Snapshot == nil {
		return false, domain.ErrRequiredFieldMissing
	}

	return event.Snapshot.CreationRoute == creationRouteValidAppeal, nil
}

// Handle appends the department-notified event with routing metadata.
func (h *SentToDepartmentHandler) Handle(ctx context.Context, event *domain.CaseEvent) error {
	ok, err := h.CanHandle(event)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrCannotHandle
	}

	updated := event.Snapshot.Clone()

	err = h.caseUpdater.UpdateWithRouting(ctx, event.CaseID(), client.CaseUpdate{
		EventType:   string(domain.EventDepartmentNotified),
		Summary:     "Appeal sent to department",
		Description: "The appeal was forwarded to the department for a response",
		Snapshot:    updated,
	}, event.Snapshot.Routing)
	if err != nil {
		return err
	}

	h.logger.Info("department notified",
		slog.Int64("case_id", event.CaseID()),
		slog.String("office_code", event.Snapshot.Routing.OfficeCode),
	)

	return nil
}
