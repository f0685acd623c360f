// Package dto provides data transfer objects for delivery audit responses.
package dto

import (
	"time"

	auditDomain "github.com/allisson/caseflow/internal/deliveryaudit/domain"
)

// DeliveryRecordResponse represents one letter bundle submission in API responses.
type DeliveryRecordResponse struct {
	ID           string    `json:"id"`
	CaseID       int64     `json:"case_id"`
	Category     string    `json:"category"`
	DocumentName string    `json:"document_name"`
	Status       string    `json:"status"`
	SubmissionID *string   `json:"submission_id,omitempty"`
	Retries      int       `json:"retries"`
	LastError    *string   `json:"last_error,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ListDeliveryRecordsResponse represents a paginated list of delivery records.
type ListDeliveryRecordsResponse struct {
	Data []DeliveryRecordResponse `json:"data"`
}

// MapDeliveryRecordsToListResponse converts domain delivery records to a list response.
func MapDeliveryRecordsToListResponse(records []*auditDomain.DeliveryRecord) ListDeliveryRecordsResponse {
	data := make([]DeliveryRecordResponse, 0, len(records))
	for _, record := range records {
		data = append(data, DeliveryRecordResponse{
			ID:           record.ID.String(),
			CaseID:       record.CaseID,
			Category:     record.Category,
			DocumentName: record.DocumentName,
			Status:       string(record.Status),
			SubmissionID: record.SubmissionID,
			Retries:      record.Retries,
			LastError:    record.LastError,
			CreatedAt:    record.CreatedAt,
			UpdatedAt:    record.UpdatedAt,
		})
	}

	return ListDeliveryRecordsResponse{
		Data: data,
	}
}

// CorrespondenceResponse represents one diverted letter in API responses.
// The Body field carries the decrypted PDF, base64-encoded on the wire.
type CorrespondenceResponse struct {
	ID           string    `json:"id"`
	CaseID       int64     `json:"case_id"`
	SenderLabel  string    `json:"sender_label"`
	DocumentName string    `json:"document_name"`
	Body         []byte    `json:"body"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListCorrespondenceResponse represents a paginated list of diverted letters.
type ListCorrespondenceResponse struct {
	Data []CorrespondenceResponse `json:"data"`
}

// MapCorrespondenceToListResponse converts domain correspondence to a list response.
func MapCorrespondenceToListResponse(entries []*auditDomain.Correspondence) ListCorrespondenceResponse {
	data := make([]CorrespondenceResponse, 0, len(entries))
	for _, entry := range entries {
		data = append(data, CorrespondenceResponse{
			ID:           entry.ID.String(),
			CaseID:       entry.CaseID,
			SenderLabel:  entry.SenderLabel,
			DocumentName: entry.DocumentName,
			Body:         entry.Body,
			CreatedAt:    entry.CreatedAt,
		})
	}

	return ListCorrespondenceResponse{
		Data: data,
	}
}
