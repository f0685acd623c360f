// Package usecase implements the further evidence distribution engine: it
// resolves recipients, renders cover letters, builds print bundles and reports
// the outcome back into the case record.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/allisson/caseflow/internal/caserecord/client"
	casedomain "github.com/allisson/caseflow/internal/caserecord/domain"
	"github.com/allisson/caseflow/internal/docstore"
	apperrors "github.com/allisson/caseflow/internal/errors"
	letterdomain "github.com/allisson/caseflow/internal/letter/domain"
	letterservice "github.com/allisson/caseflow/internal/letter/service"
	"github.com/allisson/caseflow/internal/print"
	"github.com/allisson/caseflow/internal/render"
)

// caseUpdateEventType is the event appended to the case record once every
// bundle has been submitted or diverted.
const caseUpdateEventType = "updateCaseOnly"

// evidenceFetchConcurrency caps parallel document store downloads per run.
const evidenceFetchConcurrency = 4

// Target is one letter to produce: a category plus, for the other-party
// categories, the entity id selecting the other-party entry.
type Target struct {
	Category     letterdomain.Category
	OtherPartyID string
}

// IssueInput describes one distribution run.
type IssueInput struct {
	// Snapshot is the case state the distribution works from. It is never
	// mutated; the issued flags are set on a clone.
	Snapshot *casedomain.CaseSnapshot

	// Documents are the candidate evidence documents, usually the snapshot's
	// document list.
	Documents []casedomain.Document

	// TriggeringCategory is the letter category of the party whose evidence
	// triggered the distribution (the original sender).
	TriggeringCategory letterdomain.Category

	// Targets is the ordered set of letters to address. Letters are produced
	// in exactly this order.
	Targets []Target

	// EventType is the triggering case event, passed through to the print
	// channel as the letter type.
	EventType string
}

// UseCase is the further evidence distribution engine.
type UseCase interface {
	// Issue distributes the not-yet-issued evidence of the triggering category
	// to every allowed letter category, then marks the documents issued with a
	// single case record update. The snapshot carrying the new issued flags is
	// returned so a caller running several distributions in a row can feed
	// each run the state left by the previous one. Any resolve, render or
	// submit failure aborts the whole call before that update.
	Issue(ctx context.Context, input IssueInput) (*casedomain.CaseSnapshot, error)
}

// DistributionUseCase implements UseCase.
type DistributionUseCase struct {
	resolver    letterservice.RecipientResolver
	renderer    render.Renderer
	evidence    docstore.EvidenceStore
	gateway     print.Gateway
	caseUpdater client.CaseUpdater
	logger      *slog.Logger
	now         func() time.Time
}

// NewDistributionUseCase creates a new DistributionUseCase
func NewDistributionUseCase(
	resolver letterservice.RecipientResolver,
	renderer render.Renderer,
	evidence docstore.EvidenceStore,
	gateway print.Gateway,
	caseUpdater client.CaseUpdater,
	logger *slog.Logger,
) *DistributionUseCase {
	return &DistributionUseCase{
		resolver:    resolver,
		renderer:    renderer,
		evidence:    evidence,
		gateway:     gateway,
		caseUpdater: caseUpdater,
		logger:      logger,
		now:         time.Now,
	}
}

// Issue runs the distribution loop for one triggering event.
func (uc *DistributionUseCase) Issue(ctx context.Context, input IssueInput) (*casedomain.CaseSnapshot, error) {
	if input.Snapshot == nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "case snapshot is required")
	}

	filtered := filterDocuments(input.Documents, input.TriggeringCategory)
	if len(filtered) == 0 {
		uc.logger.Info("no unissued evidence to distribute",
			slog.Int64("case_id", input.Snapshot.CaseID),
			slog.String("triggering_category", string(input.TriggeringCategory)),
		)
		return input.Snapshot, nil
	}

	evidence, err := uc.fetchEvidence(ctx, filtered)
	if err != nil {
		return nil, err
	}

	submissions := 0
	for _, target := range input.Targets {
		outcome, err := uc.issueToTarget(ctx, input, target, evidence)
		if err != nil {
			return nil, fmt.Errorf("failed to issue evidence to %s: %w", target.Category, err)
		}

		submissions++
		uc.logger.Info("evidence bundle handled",
			slog.Int64("case_id", input.Snapshot.CaseID),
			slog.String("category", string(target.Category)),
			slog.Bool("diverted", outcome.Diverted),
			slog.String("submission_id", outcome.SubmissionID),
		)
	}

	return uc.markIssued(ctx, input.Snapshot, filtered, submissions)
}

// issueToTarget resolves, renders, bundles and submits one letter.
func (uc *DistributionUseCase) issueToTarget(
	ctx context.Context,
	input IssueInput,
	target Target,
	evidence []letterdomain.Document,
) (print.Outcome, error) {
	category := target.Category

	recipient, err := uc.resolver.Resolve(input.Snapshot, category, target.OtherPartyID)
	if err != nil {
		return print.Outcome{}, err
	}

	originalSender := category == input.TriggeringCategory
	templateName, documentName := letterdomain.TemplateFor(category, originalSender, input.Snapshot.LanguagePreferenceWelsh)

	fields := letterservice.CoverLetterFields(recipient, input.Snapshot, uc.now())
	content, err := uc.renderer.Render(ctx, templateName, documentName, fields)
	if err != nil {
		return print.Outcome{}, err
	}

	bundle := letterdomain.NewBundle(
		letterdomain.Document{Content: content, Filename: documentName},
		evidence...,
	)

	return uc.gateway.Submit(ctx, bundle, input.Snapshot, category, input.EventType)
}

// fetchEvidence loads the binary content of each filtered document. Documents
// are fetched concurrently; the returned slice keeps the input order.
func (uc *DistributionUseCase) fetchEvidence(
	ctx context.Context,
	documents []casedomain.Document,
) ([]letterdomain.Document, error) {
	out := make([]letterdomain.Document, len(documents))

	var g errgroup.Group
	g.SetLimit(evidenceFetchConcurrency)

	for i, doc := range documents {
		g.Go(func() error {
			content, err := uc.evidence.Fetch(ctx, doc.URL)
			if err != nil {
				return fmt.Errorf("failed to fetch evidence %q: %w", doc.Filename, err)
			}
			out[i] = letterdomain.Document{Content: content, Filename: doc.Filename}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// markIssued flips the issued flag on a clone of the snapshot, appends a
// single summarizing event to the case record and returns the clone.
func (uc *DistributionUseCase) markIssued(
	ctx context.Context,
	snapshot *casedomain.CaseSnapshot,
	issued []casedomain.Document,
	parties int,
) (*casedomain.CaseSnapshot, error) {
	issuedURLs := make(map[string]struct{}, len(issued))
	for _, doc := range issued {
		issuedURLs[doc.URL] = struct{}{}
	}

	updated := snapshot.Clone()
	for i := range updated.Documents {
		if _, ok := issuedURLs[updated.Documents[i].URL]; ok {
			updated.Documents[i].EvidenceIssued = casedomain.Yes
		}
	}

	description := fmt.Sprintf("Evidence issued to %d parties", parties)

	err := uc.caseUpdater.Update(ctx, snapshot.CaseID, client.CaseUpdate{
		EventType:   caseUpdateEventType,
		Summary:     "Update issued evidence document flags",
		Description: description,
		Snapshot:    updated,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update case record after distribution: %w", err)
	}

	uc.logger.Info("evidence marked issued",
		slog.Int64("case_id", snapshot.CaseID),
		slog.Int("documents", len(issued)),
		slog.Int("parties", parties),
	)

	return updated, nil
}

// filterDocuments keeps the not-yet-issued documents whose category belongs to
// the triggering party.
func filterDocuments(documents []casedomain.Document, triggering letterdomain.Category) []casedomain.Document {
	var filtered []casedomain.Document
	for _, doc := range documents {
		if doc.Issued() {
			continue
		}
		if letterdomain.TriggeredBy(doc.Category) != triggering {
			continue
		}
		filtered = append(filtered, doc)
	}
	return filtered
}
