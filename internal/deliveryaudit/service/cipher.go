// Package service provides the encryption used for correspondence bodies
// kept at rest.
package service

import (
	"context"
	"crypto/rand"
	"fmt"

	"gocloud.dev/secrets"
	"golang.org/x/crypto/chacha20poly1305"

	// Register keeper drivers for managed keys and local base64 keys
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/localsecrets"
)

// CorrespondenceCipher encrypts and decrypts correspondence bodies
type CorrespondenceCipher interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
}

// keeperCipher implements CorrespondenceCipher over a gocloud.dev secrets
// keeper, delegating key management to the configured provider
type keeperCipher struct {
	keeper *secrets.Keeper
}

// NewKeeperCipher opens the keeper at keeperURL and wraps it as a
// CorrespondenceCipher. Supported schemes include awskms:// and base64key://.
func NewKeeperCipher(ctx context.Context, keeperURL string) (CorrespondenceCipher, error) {
	keeper, err := secrets.OpenKeeper(ctx, keeperURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open correspondence keeper: %w", err)
	}
	return &keeperCipher{keeper: keeper}, nil
}

func (c *keeperCipher) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	return c.keeper.Encrypt(ctx, plaintext)
}

func (c *keeperCipher) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	return c.keeper.Decrypt(ctx, ciphertext)
}

// localCipher implements CorrespondenceCipher with ChaCha20-Poly1305 and a
// locally held key. The nonce is prefixed to the ciphertext.
type localCipher struct {
	key []byte
}

// NewLocalCipher creates a CorrespondenceCipher from a 32-byte key
func NewLocalCipher(key []byte) (CorrespondenceCipher, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("correspondence key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}
	return &localCipher{key: key}, nil
}

func (c *localCipher) Encrypt(_ context.Context, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (c *localCipher) Decrypt(_ context.Context, ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	if len(ciphertext) < aead.NonceSize() {
		return nil, fmt.Errorf("ciphertext shorter than nonce")
	}

	nonce, sealed := ciphertext[:aead.NonceSize()], ciphertext[aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt correspondence body: %w", err)
	}
	return plaintext, nil
}
