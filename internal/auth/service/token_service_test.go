package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService(t *testing.T) {
	service := NewTokenService()

	t.Run("Success_GenerateToken", func(t *testing.T) {
		plainToken, tokenHash, err := service.GenerateToken()

		require.NoError(t, err)
		assert.NotEmpty(t, plainToken)
		assert.Len(t, tokenHash, 64) // SHA-256 hex
		assert.Equal(t, service.HashToken(plainToken), tokenHash)
	})

	t.Run("Success_GeneratedTokensAreUnique", func(t *testing.T) {
		first, _, err := service.GenerateToken()
		require.NoError(t, err)

		second, _, err := service.GenerateToken()
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("Success_HashTokenIsDeterministic", func(t *testing.T) {
		assert.Equal(t, service.HashToken("token-1"), service.HashToken("token-1"))
		assert.NotEqual(t, service.HashToken("token-1"), service.HashToken("token-2"))
	})
}
