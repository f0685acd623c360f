package handlers

import (
	"context"
	"log/slog"

	"github.com/allisson/caseflow/internal/callback/domain"
	"github.com/allisson/caseflow/internal/caserecord/client"
	casedomain "github.com/allisson/caseflow/internal/caserecord/domain"
)

// jointPartyBenefitCode is the benefit code of the scheme that supports joint
// parties on an appeal.
const jointPartyBenefitCode = "022"

// JointPartyAddedHandler appends a "joint party added" event when a case
// update flips the joint-party flag from absent or "No" to "Yes".
type JointPartyAddedHandler struct {
	caseUpdater client.CaseUpdater
	logger      *slog.Logger
}

// NewJointPartyAddedHandler creates a new JointPartyAddedHandler
func NewJointPartyAddedHandler(caseUpdater client.CaseUpdater, logger *slog.Logger) *JointPartyAddedHandler {
	return &JointPartyAddedHandler{
		caseUpdater: caseUpdater,
		logger:      logger,
	}
}

// Priority returns the handler's dispatch band.
func (h *JointPartyAddedHandler) Priority() domain.HandlerPriority {
	return domain.PriorityEarliest
}

// CanHandle reports whether the event is a case update on the joint-party
// benefit scheme where the joint-party flag just transitioned to "Yes".
func (h *JointPartyAddedHandler) CanHandle(event *domain.CaseEvent) (bool, error) {
	if err := validateEvent(event); err != nil {
		return false, err
	}

	if event.EventType != domain.EventCaseUpdated {
		return false, nil
	}

	if event.Snapshot == nil {
		return false, domain.ErrRequiredFieldMissing
	}

	if event.Snapshot.BenefitCode != jointPartyBenefitCode {
		return false, nil
	}

	changes := casedomain.Diff(event.Previous, event.Snapshot)
	return changes.JointPartyAdded, nil
}

// Handle appends the joint-party-added event.
func (h *JointPartyAddedHandler) Handle(ctx context.Context, event *domain.CaseEvent) error {
	ok, err := h.CanHandle(event)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrCannotHandle
	}

	updated := event.Snapshot.Clone()

	err = h.caseUpdater.Update(ctx, event.CaseID(), client.CaseUpdate{
		EventType:   string(domain.EventJointPartyAdded),
		Summary:     "Joint party added",
		Description: "A joint party was added to the appeal",
		Snapshot:    updated,
	})
	if err != nil {
		return err
	}

	h.logger.Info("joint party added", slog.Int64("case_id", event.CaseID()))

	return nil
}
