package print

import (
	"context"
	"log/slog"

	casedomain "github.com/allisson/caseflow/internal/caserecord/domain"
	auditdomain "github.com/allisson/caseflow/internal/deliveryaudit/domain"
	apperrors "github.com/allisson/caseflow/internal/errors"
	letterdomain "github.com/allisson/caseflow/internal/letter/domain"
)

// senderLabel marks diverted correspondence entries with their origin.
const senderLabel = "Appeals Tribunal Service"

// DeliveryAuditor records submission outcomes and keeps diverted bundles.
type DeliveryAuditor interface {
	RecordSent(ctx context.Context, caseID int64, category, documentName, submissionID string) error
	RecordDiverted(ctx context.Context, caseID int64, category, senderLabel string, documents []auditdomain.DivertedDocument) error
	RecordFailed(ctx context.Context, caseID int64, category, documentName string, retries int, lastError string) error
}

// printGateway implements Gateway over an injectable PrintClient transport.
type printGateway struct {
	client            PrintClient
	audit             DeliveryAuditor
	maxAttempts       int
	adjustmentEnabled bool
	logger            *slog.Logger
}

// NewGateway creates a Gateway submitting through client, retrying transient
// failures up to maxAttempts. When adjustmentEnabled is false the diversion
// path is never taken.
func NewGateway(
	client PrintClient,
	audit DeliveryAuditor,
	maxAttempts int,
	adjustmentEnabled bool,
	logger *slog.Logger,
) Gateway {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &printGateway{
		client:            client,
		audit:             audit,
		maxAttempts:       maxAttempts,
		adjustmentEnabled: adjustmentEnabled,
		logger:            logger,
	}
}

// Submit diverts the bundle when the recipient requires special handling,
// otherwise submits it to the print channel with bounded retry.
func (g *printGateway) Submit(
	ctx context.Context,
	bundle letterdomain.Bundle,
	snapshot *casedomain.CaseSnapshot,
	category letterdomain.Category,
	eventType string,
) (Outcome, error) {
	documents := bundle.Documents()
	if len(documents) == 0 {
		return Outcome{}, apperrors.Wrap(apperrors.ErrInvalidInput, "bundle has no documents")
	}
	documentName := documents[0].Filename

	if g.requiresAdjustment(snapshot, category) {
		diverted := make([]auditdomain.DivertedDocument, 0, len(documents))
		for _, doc := range documents {
			diverted = append(diverted, auditdomain.DivertedDocument{Name: doc.Filename, Body: doc.Content})
		}

		if err := g.audit.RecordDiverted(ctx, snapshot.CaseID, string(category), senderLabel, diverted); err != nil {
			return Outcome{}, err
		}

		g.logger.Info("bundle diverted for required adjustment",
			slog.Int64("case_id", snapshot.CaseID),
			slog.String("category", string(category)),
		)

		return Outcome{Diverted: true}, nil
	}

	request := SubmissionRequest{
		CaseID:        snapshot.CaseID,
		LetterType:    eventType,
		AppellantName: AppellantDisplayName(snapshot),
		Recipients:    BuildRecipientList(snapshot),
		Documents:     documents,
	}

	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		submissionID, err := g.client.Submit(ctx, request)
		if err == nil {
			if auditErr := g.audit.RecordSent(ctx, snapshot.CaseID, string(category), documentName, submissionID); auditErr != nil {
				g.logger.Warn("failed to record delivery",
					slog.Int64("case_id", snapshot.CaseID),
					slog.Any("error", auditErr),
				)
			}
			return Outcome{SubmissionID: submissionID}, nil
		}

		if apperrors.Is(err, ErrMalformedDocument) {
			g.recordFailure(ctx, snapshot.CaseID, category, documentName, attempt, err)
			return Outcome{}, err
		}

		lastErr = err
		g.logger.Warn("print submission failed",
			slog.Int64("case_id", snapshot.CaseID),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", g.maxAttempts),
			slog.Any("error", err),
		)
	}

	g.recordFailure(ctx, snapshot.CaseID, category, documentName, g.maxAttempts, lastErr)

	return Outcome{}, apperrors.Wrap(ErrPrintUnavailable, lastErr.Error())
}

// requiresAdjustment reports whether the bundle must be kept back for manual
// handling. Only appellant and representative letters divert.
func (g *printGateway) requiresAdjustment(snapshot *casedomain.CaseSnapshot, category letterdomain.Category) bool {
	if !g.adjustmentEnabled {
		return false
	}

	switch category {
	case letterdomain.CategoryAppellant:
		return snapshot.ReasonableAdjustments.Appellant.IsYes()
	case letterdomain.CategoryRepresentative:
		return snapshot.ReasonableAdjustments.Representative.IsYes()
	default:
		return false
	}
}

func (g *printGateway) recordFailure(
	ctx context.Context,
	caseID int64,
	category letterdomain.Category,
	documentName string,
	retries int,
	err error,
) {
	if auditErr := g.audit.RecordFailed(ctx, caseID, string(category), documentName, retries, err.Error()); auditErr != nil {
		g.logger.Warn("failed to record delivery failure",
			slog.Int64("case_id", caseID),
			slog.Any("error", auditErr),
		)
	}
}
