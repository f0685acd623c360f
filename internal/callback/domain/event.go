// Package domain defines the inbound case event model consumed by the
// callback dispatcher and its handlers.
package domain

import (
	casedomain "github.com/allisson/caseflow/internal/caserecord/domain"
)

// EventType identifies the case lifecycle event being processed.
type EventType string

const (
	EventSentToDepartment       EventType = "sentToDepartment"
	EventCaseUpdated            EventType = "caseUpdated"
	EventReissueFurtherEvidence EventType = "reissueFurtherEvidence"
	EventIssueFurtherEvidence   EventType = "issueFurtherEvidence"
	EventEvidenceReceived       EventType = "evidenceReceived"
)

// Event types appended to the case record by handlers.
const (
	EventDepartmentNotified EventType = "departmentNotified"
	EventJointPartyAdded    EventType = "jointPartyAdded"
	EventFailedSending      EventType = "failedSendingFurtherEvidence"
)

// CallbackStage is the point in the case record store's submit cycle the
// event was emitted at.
type CallbackStage string

const (
	StagePreSubmit  CallbackStage = "preSubmit"
	StageMidEvent   CallbackStage = "midEvent"
	StagePostSubmit CallbackStage = "postSubmit"
)

// CaseEvent is one inbound case lifecycle event. It is constructed once per
// inbound message and is immutable for the duration of a dispatch cycle.
type CaseEvent struct {
	EventType EventType
	Stage     CallbackStage
	Snapshot  *casedomain.CaseSnapshot
	Previous  *casedomain.CaseSnapshot
}

// CaseID returns the case identifier, or zero when no snapshot is present.
func (e *CaseEvent) CaseID() int64 {
	if e == nil || e.Snapshot == nil {
		return 0
	}
	return e.Snapshot.CaseID
}
