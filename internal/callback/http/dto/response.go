package dto

// CaseEventResponse acknowledges a processed case event.
type CaseEventResponse struct {
	CaseID  int64  `json:"caseId"`
	Message string `json:"message"`
}
