package domain

import (
	"time"

	"github.com/google/uuid"
)

// Token is a short-lived bearer token issued to a client. Only the SHA-256
// hash is persisted.
type Token struct {
	ID        uuid.UUID
	TokenHash string
	ClientID  uuid.UUID
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
