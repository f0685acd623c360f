package handlers

import (
	"context"
	"log/slog"
	"sort"

	"github.com/allisson/caseflow/internal/callback/domain"
	casedomain "github.com/allisson/caseflow/internal/caserecord/domain"
	distribution "github.com/allisson/caseflow/internal/distribution/usecase"
	apperrors "github.com/allisson/caseflow/internal/errors"
	letterdomain "github.com/allisson/caseflow/internal/letter/domain"
)

// ReissueEvidenceHandler resends one operator-selected evidence document to
// the recipients ticked on the reissue selection.
type ReissueEvidenceHandler struct {
	distribution distribution.UseCase
	logger       *slog.Logger
}

// NewReissueEvidenceHandler creates a new ReissueEvidenceHandler
func NewReissueEvidenceHandler(distributionUseCase distribution.UseCase, logger *slog.Logger) *ReissueEvidenceHandler {
	return &ReissueEvidenceHandler{
		distribution: distributionUseCase,
		logger:       logger,
	}
}

// Priority returns the handler's dispatch band.
func (h *ReissueEvidenceHandler) Priority() domain.HandlerPriority {
	return domain.PriorityLate
}

// CanHandle reports whether the event is a mid-event reissue request.
func (h *ReissueEvidenceHandler) CanHandle(event *domain.CaseEvent) (bool, error) {
	if err := validateEvent(event); err != nil {
		return false, err
	}

	if event.EventType != domain.EventReissueFurtherEvidence || event.Stage != domain.StageMidEvent {
		return false, nil
	}

	if event.Snapshot == nil {
		return false, domain.ErrRequiredFieldMissing
	}

	return true, nil
}

// Handle resolves the selected document and distributes it to the selected
// recipients, original sender first.
func (h *ReissueEvidenceHandler) Handle(ctx context.Context, event *domain.CaseEvent) error {
	ok, err := h.CanHandle(event)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrCannotHandle
	}

	snapshot := event.Snapshot

	selection := snapshot.ReissueSelection
	if selection == nil || selection.DocumentURL == "" {
		return apperrors.Wrap(domain.ErrRequiredFieldMissing, "reissue selection is missing")
	}

	document, found := snapshot.FindDocumentByURL(selection.DocumentURL)
	if !found {
		return casedomain.ErrDocumentNotFound
	}

	triggering := letterdomain.TriggeredBy(document.Category)
	if triggering == "" {
		return apperrors.Wrap(domain.ErrRequiredFieldMissing, "selected document has no sender category")
	}

	targets := reissueTargets(selection, triggering)
	if len(targets) == 0 {
		h.logger.Info("reissue selected no recipients", slog.Int64("case_id", event.CaseID()))
		return nil
	}

	// Reissue always resends, so the selected document is distributed even
	// when its issued flag is already set.
	document.EvidenceIssued = casedomain.No

	_, err = h.distribution.Issue(ctx, distribution.IssueInput{
		Snapshot:           snapshot,
		Documents:          []casedomain.Document{document},
		TriggeringCategory: triggering,
		Targets:            targets,
		EventType:          string(event.EventType),
	})
	return err
}

// reissueTargets converts the resend checkboxes and other-party selections
// into an ordered target list, with the original sender first.
func reissueTargets(selection *casedomain.ReissueSelection, triggering letterdomain.Category) []distribution.Target {
	var targets []distribution.Target

	if selection.ResendToAppellant.IsYes() {
		targets = append(targets, distribution.Target{Category: letterdomain.CategoryAppellant})
	}
	if selection.ResendToRepresentative.IsYes() {
		targets = append(targets, distribution.Target{Category: letterdomain.CategoryRepresentative})
	}
	for _, option := range selection.OtherPartyOptions {
		if !option.Resend.IsYes() {
			continue
		}
		category := letterdomain.CategoryOtherParty
		if option.IsRepresentative {
			category = letterdomain.CategoryOtherPartyRepresentative
		}
		targets = append(targets, distribution.Target{Category: category, OtherPartyID: option.OtherPartyID})
	}

	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].Category == triggering && targets[j].Category != triggering
	})

	return targets
}
