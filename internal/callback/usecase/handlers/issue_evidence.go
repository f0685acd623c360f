package handlers

import (
	"context"
	"log/slog"
	"sort"

	"github.com/allisson/caseflow/internal/callback/domain"
	"github.com/allisson/caseflow/internal/caserecord/client"
	casedomain "github.com/allisson/caseflow/internal/caserecord/domain"
	distribution "github.com/allisson/caseflow/internal/distribution/usecase"
	apperrors "github.com/allisson/caseflow/internal/errors"
	letterdomain "github.com/allisson/caseflow/internal/letter/domain"
)

// IssueEvidenceHandler distributes every not-yet-issued evidence document to
// the parties on the case. A terminal downstream failure is converted into a
// "failed sending" case update rather than propagated.
type IssueEvidenceHandler struct {
	distribution distribution.UseCase
	caseUpdater  client.CaseUpdater
	logger       *slog.Logger
}

// NewIssueEvidenceHandler creates a new IssueEvidenceHandler
func NewIssueEvidenceHandler(
	distributionUseCase distribution.UseCase,
	caseUpdater client.CaseUpdater,
	logger *slog.Logger,
) *IssueEvidenceHandler {
	return &IssueEvidenceHandler{
		distribution: distributionUseCase,
		caseUpdater:  caseUpdater,
		logger:       logger,
	}
}

// Priority returns the handler's dispatch band.
func (h *IssueEvidenceHandler) Priority() domain.HandlerPriority {
	return domain.PriorityLate
}

// CanHandle reports whether the event is a post-submit issue request.
func (h *IssueEvidenceHandler) CanHandle(event *domain.CaseEvent) (bool, error) {
	if err := validateEvent(event); err != nil {
		return false, err
	}

	if event.EventType != domain.EventIssueFurtherEvidence || event.Stage != domain.StagePostSubmit {
		return false, nil
	}

	if event.Snapshot == nil {
		return false, domain.ErrRequiredFieldMissing
	}

	return true, nil
}

// Handle distributes the unissued evidence, one run per submitting party.
func (h *IssueEvidenceHandler) Handle(ctx context.Context, event *domain.CaseEvent) error {
	ok, err := h.CanHandle(event)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrCannotHandle
	}

	snapshot := event.Snapshot

	for _, triggering := range unissuedCategories(snapshot) {
		input := distribution.IssueInput{
			Snapshot:           snapshot,
			Documents:          snapshot.Documents,
			TriggeringCategory: triggering,
			Targets:            issueTargets(snapshot, triggering),
			EventType:          string(event.EventType),
		}

		updated, err := h.distribution.Issue(ctx, input)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrUnavailable) {
				return h.recordFailedSending(ctx, event, err)
			}
			return err
		}

		// The next category run must see the issued flags this run set.
		if updated != nil {
			snapshot = updated
		}
	}

	return nil
}

// recordFailedSending converts a terminal distribution failure into a case
// record state update. The failure is captured on the case, not re-raised.
func (h *IssueEvidenceHandler) recordFailedSending(ctx context.Context, event *domain.CaseEvent, cause error) error {
	h.logger.Error("evidence distribution failed terminally",
		slog.Int64("case_id", event.CaseID()),
		slog.Any("error", cause),
	)

	return h.caseUpdater.Update(ctx, event.CaseID(), client.CaseUpdate{
		EventType:   string(domain.EventFailedSending),
		Summary:     "Failed to send further evidence",
		Description: cause.Error(),
		Snapshot:    event.Snapshot.Clone(),
	})
}

// unissuedCategories returns the distinct sender categories of the not-yet
// issued documents, in document order.
func unissuedCategories(snapshot *casedomain.CaseSnapshot) []letterdomain.Category {
	var categories []letterdomain.Category
	seen := make(map[letterdomain.Category]struct{})

	for _, doc := range snapshot.Documents {
		if doc.Issued() {
			continue
		}
		category := letterdomain.TriggeredBy(doc.Category)
		if category == "" {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}

	return categories
}

// issueTargets builds the standard recipient list for one distribution run:
// the original sender first, then the remaining parties and any other parties,
// then the department.
func issueTargets(snapshot *casedomain.CaseSnapshot, triggering letterdomain.Category) []distribution.Target {
	candidates := []distribution.Target{{Category: letterdomain.CategoryAppellant}}
	if snapshot.HasRepresentative() {
		candidates = append(candidates, distribution.Target{Category: letterdomain.CategoryRepresentative})
	}
	if snapshot.HasJointParty() {
		candidates = append(candidates, distribution.Target{Category: letterdomain.CategoryJointParty})
	}
	for _, party := range snapshot.OtherParties {
		candidates = append(candidates, distribution.Target{
			Category:     letterdomain.CategoryOtherParty,
			OtherPartyID: party.ID,
		})
		if party.Representative != nil && party.Representative.HasRepresentative.IsYes() {
			candidates = append(candidates, distribution.Target{
				Category:     letterdomain.CategoryOtherPartyRepresentative,
				OtherPartyID: party.Representative.ID,
			})
		}
	}
	candidates = append(candidates, distribution.Target{Category: letterdomain.CategoryDepartment})

	// Original sender goes first.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Category == triggering && candidates[j].Category != triggering
	})

	return candidates
}
