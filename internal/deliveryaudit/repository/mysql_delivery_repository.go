package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/caseflow/internal/database"
	"github.com/allisson/caseflow/internal/deliveryaudit/domain"
)

// MySQLDeliveryRepository handles delivery audit persistence for MySQL
type MySQLDeliveryRepository struct {
	db *sql.DB
}

// NewMySQLDeliveryRepository creates a new MySQLDeliveryRepository
func NewMySQLDeliveryRepository(db *sql.DB) *MySQLDeliveryRepository {
	return &MySQLDeliveryRepository{
		db: db,
	}
}

// CreateDeliveryRecord inserts a new delivery record
func (r *MySQLDeliveryRepository) CreateDeliveryRecord(ctx context.Context, record *domain.DeliveryRecord) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO delivery_records (id, case_id, category, document_name, status, submission_id, retries, last_error, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query, record.ID.String(), record.CaseID, record.Category, record.DocumentName,
		record.Status, record.SubmissionID, record.Retries, record.LastError)

	return err
}

// UpdateDeliveryRecord updates a delivery record
func (r *MySQLDeliveryRepository) UpdateDeliveryRecord(ctx context.Context, record *domain.DeliveryRecord) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE delivery_records
			  SET status = ?, submission_id = ?, retries = ?, last_error = ?, updated_at = NOW()
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, record.Status, record.SubmissionID,
		record.Retries, record.LastError, record.ID.String())
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrDeliveryRecordNotFound
	}

	return nil
}

// ListDeliveryRecordsByCase retrieves delivery records for a case, newest first
func (r *MySQLDeliveryRepository) ListDeliveryRecordsByCase(
	ctx context.Context,
	caseID int64,
	offset, limit int,
) ([]*domain.DeliveryRecord, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, case_id, category, document_name, status, submission_id, retries, last_error, created_at, updated_at
			  FROM delivery_records
			  WHERE case_id = ?
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, caseID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var records []*domain.DeliveryRecord
	for rows.Next() {
		var record domain.DeliveryRecord

		err := rows.Scan(&record.ID, &record.CaseID, &record.Category, &record.DocumentName,
			&record.Status, &record.SubmissionID, &record.Retries, &record.LastError,
			&record.CreatedAt, &record.UpdatedAt)
		if err != nil {
			return nil, err
		}

		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// CreateCorrespondence inserts a diverted correspondence entry
func (r *MySQLDeliveryRepository) CreateCorrespondence(ctx context.Context, corr *domain.Correspondence) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO correspondences (id, case_id, sender_label, document_name, body, created_at)
			  VALUES (?, ?, ?, ?, ?, NOW())`

	_, err := querier.ExecContext(ctx, query, corr.ID.String(), corr.CaseID, corr.SenderLabel,
		corr.DocumentName, corr.Body)

	return err
}

// ListCorrespondenceByCase retrieves correspondence entries for a case, newest first
func (r *MySQLDeliveryRepository) ListCorrespondenceByCase(
	ctx context.Context,
	caseID int64,
	offset, limit int,
) ([]*domain.Correspondence, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, case_id, sender_label, document_name, body, created_at
			  FROM correspondences
			  WHERE case_id = ?
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, caseID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var entries []*domain.Correspondence
	for rows.Next() {
		var corr domain.Correspondence

		err := rows.Scan(&corr.ID, &corr.CaseID, &corr.SenderLabel, &corr.DocumentName,
			&corr.Body, &corr.CreatedAt)
		if err != nil {
			return nil, err
		}

		entries = append(entries, &corr)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
