package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	authUseCase "github.com/allisson/caseflow/internal/auth/usecase"
)

// RunDeactivateClient deactivates an API client, blocking further token
// issuance and bearer authentication for it.
//
// Requirements: Database must be migrated and accessible.
func RunDeactivateClient(
	ctx context.Context,
	clientUseCase authUseCase.ClientUseCase,
	logger *slog.Logger,
	clientID string,
	io IOTuple,
) error {
	id, err := uuid.Parse(clientID)
	if err != nil {
		return fmt.Errorf("invalid client id: %w", err)
	}

	if err := clientUseCase.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate client: %w", err)
	}

	_, _ = fmt.Fprintf(io.Writer, "Client %s deactivated.\n", id.String())

	logger.Info("client deactivated", slog.String("client_id", id.String()))

	return nil
}
