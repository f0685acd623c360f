package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/caseflow/internal/auth/domain"
	"github.com/allisson/caseflow/internal/config"
)

// MockClientRepository is a mock implementation of ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, client *authDomain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, client *authDomain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, clientID uuid.UUID) (*authDomain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Client), args.Error(1)
}

// MockTokenRepository is a mock implementation of TokenRepository
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Create(ctx context.Context, token *authDomain.Token) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*authDomain.Token, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Token), args.Error(1)
}

// MockSecretService is a mock implementation of authService.SecretService
type MockSecretService struct {
	mock.Mock
}

func (m *MockSecretService) GenerateSecret() (string, string, error) {
	args := m.Called()
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockSecretService) HashSecret(plainSecret string) (string, error) {
	args := m.Called(plainSecret)
	return args.String(0), args.Error(1)
}

func (m *MockSecretService) CompareSecret(plainSecret, hashedSecret string) bool {
	args := m.Called(plainSecret, hashedSecret)
	return args.Bool(0)
}

// MockTokenService is a mock implementation of authService.TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateToken() (string, string, error) {
	args := m.Called()
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) HashToken(plainToken string) string {
	args := m.Called(plainToken)
	return args.String(0)
}

func testConfig() *config.Config {
	return &config.Config{
		AuthTokenExpiration: 4 * time.Hour,
	}
}

func activeClient() *authDomain.Client {
	return &authDomain.Client{
		ID:        uuid.Must(uuid.NewV7()),
		Secret:    "hashed-secret",
		Name:      "case-record-store",
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
}

func TestTokenUseCase_Issue(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_IssuesToken", func(t *testing.T) {
		clientRepo := &MockClientRepository{}
		tokenRepo := &MockTokenRepository{}
		secretService := &MockSecretService{}
		tokenService := &MockTokenService{}
		useCase := NewTokenUseCase(testConfig(), clientRepo, tokenRepo, secretService, tokenService)

		client := activeClient()

		clientRepo.On("Get", ctx, client.ID).Return(client, nil)
		secretService.On("CompareSecret", "plain-secret", "hashed-secret").Return(true)
		tokenService.On("GenerateToken").Return("plain-token", "token-hash", nil)
		tokenRepo.On("Create", ctx, mock.MatchedBy(func(token *authDomain.Token) bool {
			return token.TokenHash == "token-hash" && token.ClientID == client.ID && token.RevokedAt == nil
		})).Return(nil)

		output, err := useCase.Issue(ctx, &authDomain.IssueTokenInput{
			ClientID:     client.ID,
			ClientSecret: "plain-secret",
		})

		require.NoError(t, err)
		assert.Equal(t, "plain-token", output.PlainToken)
		assert.WithinDuration(t, time.Now().UTC().Add(4*time.Hour), output.ExpiresAt, time.Minute)

		tokenRepo.AssertExpectations(t)
	})

	t.Run("Error_UnknownClientIsInvalidCredentials", func(t *testing.T) {
		clientRepo := &MockClientRepository{}
		useCase := NewTokenUseCase(testConfig(), clientRepo, &MockTokenRepository{}, &MockSecretService{}, &MockTokenService{})

		clientRepo.On("Get", ctx, mock.Anything).Return(nil, authDomain.ErrClientNotFound)

		_, err := useCase.Issue(ctx, &authDomain.IssueTokenInput{ClientID: uuid.Must(uuid.NewV7())})

		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
	})

	t.Run("Error_WrongSecretIsInvalidCredentials", func(t *testing.T) {
		clientRepo := &MockClientRepository{}
		secretService := &MockSecretService{}
		useCase := NewTokenUseCase(testConfig(), clientRepo, &MockTokenRepository{}, secretService, &MockTokenService{})

		client := activeClient()
		clientRepo.On("Get", ctx, client.ID).Return(client, nil)
		secretService.On("CompareSecret", "wrong", "hashed-secret").Return(false)

		_, err := useCase.Issue(ctx, &authDomain.IssueTokenInput{
			ClientID:     client.ID,
			ClientSecret: "wrong",
		})

		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
	})

	t.Run("Error_InactiveClient", func(t *testing.T) {
		clientRepo := &MockClientRepository{}
		useCase := NewTokenUseCase(testConfig(), clientRepo, &MockTokenRepository{}, &MockSecretService{}, &MockTokenService{})

		client := activeClient()
		client.IsActive = false
		clientRepo.On("Get", ctx, client.ID).Return(client, nil)

		_, err := useCase.Issue(ctx, &authDomain.IssueTokenInput{ClientID: client.ID})

		assert.ErrorIs(t, err, authDomain.ErrClientInactive)
	})
}

func TestTokenUseCase_Authenticate(t *testing.T) {
	ctx := context.Background()

	validToken := func(clientID uuid.UUID) *authDomain.Token {
		return &authDomain.Token{
			ID:        uuid.Must(uuid.NewV7()),
			TokenHash: "token-hash",
			ClientID:  clientID,
			ExpiresAt: time.Now().UTC().Add(time.Hour),
			CreatedAt: time.Now().UTC(),
		}
	}

	t.Run("Success_ReturnsClient", func(t *testing.T) {
		clientRepo := &MockClientRepository{}
		tokenRepo := &MockTokenRepository{}
		useCase := NewTokenUseCase(testConfig(), clientRepo, tokenRepo, &MockSecretService{}, &MockTokenService{})

		client := activeClient()
		tokenRepo.On("GetByTokenHash", ctx, "token-hash").Return(validToken(client.ID), nil)
		clientRepo.On("Get", ctx, client.ID).Return(client, nil)

		got, err := useCase.Authenticate(ctx, "token-hash")

		require.NoError(t, err)
		assert.Equal(t, client.ID, got.ID)
	})

	t.Run("Error_UnknownTokenIsInvalidCredentials", func(t *testing.T) {
		tokenRepo := &MockTokenRepository{}
		useCase := NewTokenUseCase(testConfig(), &MockClientRepository{}, tokenRepo, &MockSecretService{}, &MockTokenService{})

		tokenRepo.On("GetByTokenHash", ctx, "missing").Return(nil, authDomain.ErrTokenNotFound)

		_, err := useCase.Authenticate(ctx, "missing")

		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
	})

	t.Run("Error_ExpiredToken", func(t *testing.T) {
		clientRepo := &MockClientRepository{}
		tokenRepo := &MockTokenRepository{}
		useCase := NewTokenUseCase(testConfig(), clientRepo, tokenRepo, &MockSecretService{}, &MockTokenService{})

		client := activeClient()
		token := validToken(client.ID)
		token.ExpiresAt = time.Now().UTC().Add(-time.Minute)
		tokenRepo.On("GetByTokenHash", ctx, "token-hash").Return(token, nil)

		_, err := useCase.Authenticate(ctx, "token-hash")

		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		clientRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("Error_RevokedToken", func(t *testing.T) {
		tokenRepo := &MockTokenRepository{}
		useCase := NewTokenUseCase(testConfig(), &MockClientRepository{}, tokenRepo, &MockSecretService{}, &MockTokenService{})

		client := activeClient()
		token := validToken(client.ID)
		revokedAt := time.Now().UTC().Add(-time.Minute)
		token.RevokedAt = &revokedAt
		tokenRepo.On("GetByTokenHash", ctx, "token-hash").Return(token, nil)

		_, err := useCase.Authenticate(ctx, "token-hash")

		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
	})

	t.Run("Error_InactiveClient", func(t *testing.T) {
		clientRepo := &MockClientRepository{}
		tokenRepo := &MockTokenRepository{}
		useCase := NewTokenUseCase(testConfig(), clientRepo, tokenRepo, &MockSecretService{}, &MockTokenService{})

		client := activeClient()
		client.IsActive = false
		tokenRepo.On("GetByTokenHash", ctx, "token-hash").Return(validToken(client.ID), nil)
		clientRepo.On("Get", ctx, client.ID).Return(client, nil)

		_, err := useCase.Authenticate(ctx, "token-hash")

		assert.ErrorIs(t, err, authDomain.ErrClientInactive)
	})
}
