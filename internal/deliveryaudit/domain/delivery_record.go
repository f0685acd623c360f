// Package domain defines the delivery audit entities: the per-recipient
// delivery records and the diverted correspondence kept for cases that must
// not receive printed post.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus represents the outcome of one letter bundle submission
type DeliveryStatus string

const (
	DeliveryStatusPending  DeliveryStatus = "pending"
	DeliveryStatusSent     DeliveryStatus = "sent"
	DeliveryStatusDiverted DeliveryStatus = "diverted"
	DeliveryStatusFailed   DeliveryStatus = "failed"
)

// DeliveryRecord tracks one letter bundle submitted for a recipient category
// of a case
type DeliveryRecord struct {
	ID           uuid.UUID
	CaseID       int64
	Category     string
	DocumentName string
	Status       DeliveryStatus
	SubmissionID *string
	Retries      int
	LastError    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewDeliveryRecord creates a pending delivery record for a case and
// recipient category
func NewDeliveryRecord(caseID int64, category, documentName string) *DeliveryRecord {
	return &DeliveryRecord{
		ID:           uuid.Must(uuid.NewV7()),
		CaseID:       caseID,
		Category:     category,
		DocumentName: documentName,
		Status:       DeliveryStatusPending,
	}
}

// MarkSent records a successful submission with the print provider's
// submission id
func (r *DeliveryRecord) MarkSent(submissionID string) {
	r.Status = DeliveryStatusSent
	r.SubmissionID = &submissionID
	r.LastError = nil
}

// MarkDiverted records that the bundle was kept back instead of printed
func (r *DeliveryRecord) MarkDiverted() {
	r.Status = DeliveryStatusDiverted
	r.LastError = nil
}

// MarkFailed records a terminal submission failure
func (r *DeliveryRecord) MarkFailed(retries int, lastError string) {
	r.Status = DeliveryStatusFailed
	r.Retries = retries
	r.LastError = &lastError
}

// Correspondence is a letter bundle persisted against a case instead of being
// sent to the print provider. The body is stored encrypted at rest.
type Correspondence struct {
	ID           uuid.UUID
	CaseID       int64
	SenderLabel  string
	DocumentName string
	Body         []byte
	CreatedAt    time.Time
}

// DivertedDocument is one plaintext document of a bundle kept back from the
// print provider
type DivertedDocument struct {
	Name string
	Body []byte
}

// NewCorrespondence creates a correspondence entry with an encrypted body
func NewCorrespondence(caseID int64, senderLabel, documentName string, body []byte) *Correspondence {
	return &Correspondence{
		ID:           uuid.Must(uuid.NewV7()),
		CaseID:       caseID,
		SenderLabel:  senderLabel,
		DocumentName: documentName,
		Body:         body,
	}
}
