package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allisson/caseflow/internal/callback/domain"
	"github.com/allisson/caseflow/internal/notify"
)

// EvidenceReceivedNotifyHandler emails the appellant, when subscribed, that
// new evidence arrived on the case.
type EvidenceReceivedNotifyHandler struct {
	sender notify.Sender
	logger *slog.Logger
}

// NewEvidenceReceivedNotifyHandler creates a new EvidenceReceivedNotifyHandler
func NewEvidenceReceivedNotifyHandler(sender notify.Sender, logger *slog.Logger) *EvidenceReceivedNotifyHandler {
	return &EvidenceReceivedNotifyHandler{
		sender: sender,
		logger: logger,
	}
}

// Priority returns the handler's dispatch band.
func (h *EvidenceReceivedNotifyHandler) Priority() domain.HandlerPriority {
	return domain.PriorityLatest
}

// CanHandle reports whether the event is an evidence-received event for a
// case with an email subscription.
func (h *EvidenceReceivedNotifyHandler) CanHandle(event *domain.CaseEvent) (bool, error) {
	if err := validateEvent(event); err != nil {
		return false, err
	}

	if event.EventType != domain.EventEvidenceReceived {
		return false, nil
	}

	if event.Snapshot == nil {
		return false, domain.ErrRequiredFieldMissing
	}

	subscription := event.Snapshot.Subscription
	return subscription.SubscribeEmail.IsYes() && subscription.Email != "", nil
}

// Handle sends the notification email.
func (h *EvidenceReceivedNotifyHandler) Handle(ctx context.Context, event *domain.CaseEvent) error {
	ok, err := h.CanHandle(event)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrCannotHandle
	}

	subject := "Evidence received for your appeal"
	body := fmt.Sprintf(
		"We have received new evidence for appeal %s. It will be shared with the other parties on the case.",
		event.Snapshot.CaseReference,
	)

	if err := h.sender.Send(ctx, event.Snapshot.Subscription.Email, subject, body); err != nil {
		return err
	}

	h.logger.Info("evidence received notification sent", slog.Int64("case_id", event.CaseID()))

	return nil
}
