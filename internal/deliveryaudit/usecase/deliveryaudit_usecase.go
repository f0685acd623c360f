// Package usecase implements the delivery audit business logic: recording
// submission outcomes and keeping diverted correspondence encrypted at rest.
package usecase

import (
	"context"
	"log/slog"

	"github.com/allisson/caseflow/internal/database"
	"github.com/allisson/caseflow/internal/deliveryaudit/domain"
	"github.com/allisson/caseflow/internal/deliveryaudit/service"
	apperrors "github.com/allisson/caseflow/internal/errors"
)

// DeliveryRepository defines delivery audit repository operations
type DeliveryRepository interface {
	CreateDeliveryRecord(ctx context.Context, record *domain.DeliveryRecord) error
	UpdateDeliveryRecord(ctx context.Context, record *domain.DeliveryRecord) error
	ListDeliveryRecordsByCase(ctx context.Context, caseID int64, offset, limit int) ([]*domain.DeliveryRecord, error)
	CreateCorrespondence(ctx context.Context, corr *domain.Correspondence) error
	ListCorrespondenceByCase(ctx context.Context, caseID int64, offset, limit int) ([]*domain.Correspondence, error)
}

// UseCase defines the delivery audit use cases
type UseCase interface {
	// RecordSent records a successful print submission for a recipient category.
	RecordSent(ctx context.Context, caseID int64, category, documentName, submissionID string) error

	// RecordDiverted keeps a bundle back from the print provider: it stores
	// each document as encrypted correspondence and records one diverted
	// delivery, all in one transaction.
	RecordDiverted(ctx context.Context, caseID int64, category, senderLabel string, documents []domain.DivertedDocument) error

	// RecordFailed records a terminal submission failure.
	RecordFailed(ctx context.Context, caseID int64, category, documentName string, retries int, lastError string) error

	// ListDeliveries returns delivery records for a case.
	ListDeliveries(ctx context.Context, caseID int64, offset, limit int) ([]*domain.DeliveryRecord, error)

	// ListCorrespondence returns correspondence for a case with decrypted bodies.
	ListCorrespondence(ctx context.Context, caseID int64, offset, limit int) ([]*domain.Correspondence, error)
}

// DeliveryAuditUseCase implements the delivery audit business logic
type DeliveryAuditUseCase struct {
	txManager    database.TxManager
	deliveryRepo DeliveryRepository
	cipher       service.CorrespondenceCipher
	logger       *slog.Logger
}

// NewDeliveryAuditUseCase creates a new DeliveryAuditUseCase
func NewDeliveryAuditUseCase(
	txManager database.TxManager,
	deliveryRepo DeliveryRepository,
	cipher service.CorrespondenceCipher,
	logger *slog.Logger,
) *DeliveryAuditUseCase {
	return &DeliveryAuditUseCase{
		txManager:    txManager,
		deliveryRepo: deliveryRepo,
		cipher:       cipher,
		logger:       logger,
	}
}

// RecordSent records a successful print submission
func (uc *DeliveryAuditUseCase) RecordSent(
	ctx context.Context,
	caseID int64,
	category, documentName, submissionID string,
) error {
	record := domain.NewDeliveryRecord(caseID, category, documentName)
	record.MarkSent(submissionID)

	if err := uc.deliveryRepo.CreateDeliveryRecord(ctx, record); err != nil {
		return err
	}

	uc.logger.Info("delivery recorded",
		slog.Int64("case_id", caseID),
		slog.String("category", category),
		slog.String("submission_id", submissionID),
	)

	return nil
}

// RecordDiverted stores the encrypted bundle documents and a diverted delivery
// record in one transaction
func (uc *DeliveryAuditUseCase) RecordDiverted(
	ctx context.Context,
	caseID int64,
	category, senderLabel string,
	documents []domain.DivertedDocument,
) error {
	if len(documents) == 0 {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "diverted bundle has no documents")
	}

	entries := make([]*domain.Correspondence, 0, len(documents))
	for _, doc := range documents {
		encrypted, err := uc.cipher.Encrypt(ctx, doc.Body)
		if err != nil {
			return err
		}
		entries = append(entries, domain.NewCorrespondence(caseID, senderLabel, doc.Name, encrypted))
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		for _, corr := range entries {
			if err := uc.deliveryRepo.CreateCorrespondence(ctx, corr); err != nil {
				return err
			}
		}

		record := domain.NewDeliveryRecord(caseID, category, documents[0].Name)
		record.MarkDiverted()

		return uc.deliveryRepo.CreateDeliveryRecord(ctx, record)
	})
	if err != nil {
		return err
	}

	uc.logger.Info("correspondence diverted",
		slog.Int64("case_id", caseID),
		slog.String("category", category),
		slog.Int("documents", len(documents)),
	)

	return nil
}

// RecordFailed records a terminal submission failure
func (uc *DeliveryAuditUseCase) RecordFailed(
	ctx context.Context,
	caseID int64,
	category, documentName string,
	retries int,
	lastError string,
) error {
	record := domain.NewDeliveryRecord(caseID, category, documentName)
	record.MarkFailed(retries, lastError)

	if err := uc.deliveryRepo.CreateDeliveryRecord(ctx, record); err != nil {
		return err
	}

	uc.logger.Warn("delivery failure recorded",
		slog.Int64("case_id", caseID),
		slog.String("category", category),
		slog.String("last_error", lastError),
	)

	return nil
}

// ListDeliveries returns delivery records for a case
func (uc *DeliveryAuditUseCase) ListDeliveries(
	ctx context.Context,
	caseID int64,
	offset, limit int,
) ([]*domain.DeliveryRecord, error) {
	return uc.deliveryRepo.ListDeliveryRecordsByCase(ctx, caseID, offset, limit)
}

// ListCorrespondence returns correspondence for a case with decrypted bodies
func (uc *DeliveryAuditUseCase) ListCorrespondence(
	ctx context.Context,
	caseID int64,
	offset, limit int,
) ([]*domain.Correspondence, error) {
	entries, err := uc.deliveryRepo.ListCorrespondenceByCase(ctx, caseID, offset, limit)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		body, err := uc.cipher.Decrypt(ctx, entry.Body)
		if err != nil {
			return nil, err
		}
		entry.Body = body
	}

	return entries, nil
}
