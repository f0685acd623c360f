package dto

import "time"

// IssueTokenResponse contains the issued token. The token value is only
// returned once.
type IssueTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
