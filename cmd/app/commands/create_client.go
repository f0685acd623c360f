package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	authDomain "github.com/allisson/caseflow/internal/auth/domain"
	authUseCase "github.com/allisson/caseflow/internal/auth/usecase"
)

// RunCreateClient creates a new API client and prints its credentials.
// Outputs client ID and plain secret in either text or JSON format.
// SECURITY: The secret is only shown once and must be saved securely.
//
// Requirements: Database must be migrated and accessible.
func RunCreateClient(
	ctx context.Context,
	clientUseCase authUseCase.ClientUseCase,
	logger *slog.Logger,
	name string,
	isActive bool,
	format string,
	io IOTuple,
) error {
	logger.Info("creating new client", slog.String("name", name))

	input := &authDomain.CreateClientInput{
		Name:     name,
		IsActive: isActive,
	}

	output, err := clientUseCase.Create(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	if format == "json" {
		outputClientJSON(output, io.Writer)
	} else {
		outputClientText(output, io.Writer)
	}

	logger.Info("client created successfully",
		slog.String("client_id", output.ID.String()),
		slog.String("name", name),
		slog.Bool("is_active", isActive),
	)

	return nil
}

// outputClientText prints the created client credentials in human-readable form.
func outputClientText(output *authDomain.CreateClientOutput, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nClient created successfully!")
	_, _ = fmt.Fprintf(writer, "Client ID:     %s\n", output.ID.String())
	_, _ = fmt.Fprintf(writer, "Client Secret: %s\n", output.PlainSecret)
	_, _ = fmt.Fprintln(writer, "\nSave the secret now: it cannot be retrieved again.")
}

// outputClientJSON prints the created client credentials as JSON.
func outputClientJSON(output *authDomain.CreateClientOutput, writer io.Writer) {
	payload := map[string]string{
		"id":     output.ID.String(),
		"secret": output.PlainSecret,
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(payload)
}
