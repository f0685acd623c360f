// Package service provides secret and token generation for authentication.
package service

// SecretService defines operations for client secret generation and validation.
// Implementations must use cryptographically secure random generation and an
// industry-standard password hashing algorithm.
type SecretService interface {
	// GenerateSecret creates a new cryptographically secure random secret.
	// Returns both the plain text secret (shared with the client once) and
	// the hashed version (stored in the database).
	GenerateSecret() (plainSecret string, hashedSecret string, error error)

	// HashSecret hashes a plain text secret.
	HashSecret(plainSecret string) (hashedSecret string, error error)

	// CompareSecret compares a plain text secret against a hashed secret.
	// The comparison is constant-time to prevent timing attacks.
	CompareSecret(plainSecret string, hashedSecret string) bool
}

// TokenService defines operations for bearer token generation and hashing.
// Tokens are short-lived, so a fast hash (SHA-256) is sufficient.
type TokenService interface {
	// GenerateToken creates a new cryptographically secure random token.
	// Returns both the plain text token (shared with the client once) and
	// the hashed version (stored in the database).
	GenerateToken() (plainToken string, tokenHash string, error error)

	// HashToken hashes a plain text token using SHA-256.
	HashToken(plainToken string) string
}
