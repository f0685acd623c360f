// Package usecase defines business logic interfaces for authentication operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/allisson/caseflow/internal/auth/domain"
)

// ClientRepository defines persistence operations for authentication clients.
// Implementations must support transaction-aware operations via context propagation.
type ClientRepository interface {
	// Create stores a new client in the repository.
	Create(ctx context.Context, client *authDomain.Client) error

	// Update modifies an existing client in the repository.
	Update(ctx context.Context, client *authDomain.Client) error

	// Get retrieves a client by ID. Returns ErrClientNotFound if not found.
	Get(ctx context.Context, clientID uuid.UUID) (*authDomain.Client, error)
}

// TokenRepository defines persistence operations for authentication tokens.
// Implementations must support transaction-aware operations via context propagation.
type TokenRepository interface {
	// Create stores a new token in the repository.
	Create(ctx context.Context, token *authDomain.Token) error

	// GetByTokenHash retrieves a token by its SHA-256 hash.
	// Returns ErrTokenNotFound if not found.
	GetByTokenHash(ctx context.Context, tokenHash string) (*authDomain.Token, error)
}

// ClientUseCase defines business logic operations for managing clients.
type ClientUseCase interface {
	// Create generates a new client with a cryptographically secure secret.
	// The plain secret is only returned once; the hashed version is stored.
	Create(
		ctx context.Context,
		createClientInput *authDomain.CreateClientInput,
	) (*authDomain.CreateClientOutput, error)

	// Get retrieves a client by ID including its hashed secret.
	// Returns ErrClientNotFound if the specified client doesn't exist.
	Get(ctx context.Context, clientID uuid.UUID) (*authDomain.Client, error)

	// Deactivate sets IsActive to false, preventing authentication while
	// preserving the client record. Returns ErrClientNotFound if the
	// specified client doesn't exist.
	Deactivate(ctx context.Context, clientID uuid.UUID) error
}

// TokenUseCase defines business logic operations for bearer tokens.
type TokenUseCase interface {
	// Issue authenticates a client and generates a new bearer token.
	// Returns ErrInvalidCredentials for unknown clients and wrong secrets
	// alike, and ErrClientInactive for deactivated clients.
	Issue(
		ctx context.Context,
		issueTokenInput *authDomain.IssueTokenInput,
	) (*authDomain.IssueTokenOutput, error)

	// Authenticate validates a token hash and returns the associated client.
	Authenticate(ctx context.Context, tokenHash string) (*authDomain.Client, error)
}
