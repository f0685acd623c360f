// Package domain defines the authentication domain models.
//
// Callers of the engine (the case record store and operational tooling)
// authenticate as clients using generated secrets and short-lived bearer
// tokens.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a caller allowed to deliver case events and read the
// delivery audit trail.
type Client struct {
	ID        uuid.UUID // Unique identifier (UUIDv7)
	Secret    string    //nolint:gosec // hashed client secret (not plaintext)
	Name      string    // Human-readable client name
	IsActive  bool      // Whether the client can authenticate
	CreatedAt time.Time
}

// CreateClientInput contains the parameters for creating a new client.
// The client secret is generated, never supplied by the caller.
type CreateClientInput struct {
	Name     string
	IsActive bool
}

// CreateClientOutput contains the result of creating a new client.
// The PlainSecret is only returned once and is never retrievable again.
type CreateClientOutput struct {
	ID          uuid.UUID
	PlainSecret string
}

// IssueTokenInput contains the credentials presented when requesting a token.
type IssueTokenInput struct {
	ClientID     uuid.UUID
	ClientSecret string
}

// IssueTokenOutput contains the issued token. The PlainToken is only returned
// once; the store keeps a hash.
type IssueTokenOutput struct {
	PlainToken string
	ExpiresAt  time.Time
}
