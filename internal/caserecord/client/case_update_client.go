package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	casedomain "github.com/allisson/caseflow/internal/caserecord/domain"
	apperrors "github.com/allisson/caseflow/internal/errors"
)

// serviceIdentifier keys supplementary routing metadata on the case record.
const serviceIdentifier = "caseflow"

// httpCaseUpdateClient implements CaseUpdater against the case record store's
// REST API.
type httpCaseUpdateClient struct {
	baseURL    string
	tokens     TokenProvider
	httpClient *http.Client
	logger     *slog.Logger
}

// NewCaseUpdateClient creates a CaseUpdater for the case record store at baseURL.
func NewCaseUpdateClient(baseURL string, tokens TokenProvider, logger *slog.Logger) CaseUpdater {
	return &httpCaseUpdateClient{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

type caseUpdatePayload struct {
	EventType         string                    `json:"eventType"`
	Summary           string                    `json:"summary"`
	Description       string                    `json:"description"`
	Data              *casedomain.CaseSnapshot  `json:"data,omitempty"`
	SupplementaryData map[string]map[string]any `json:"supplementaryData,omitempty"`
}

// Update appends an event with the new case state.
func (c *httpCaseUpdateClient) Update(ctx context.Context, caseID int64, update CaseUpdate) error {
	return c.send(ctx, caseID, caseUpdatePayload{
		EventType:   update.EventType,
		Summary:     update.Summary,
		Description: update.Description,
		Data:        update.Snapshot,
	})
}

// UpdateWithRouting appends an event with a supplementary routing-metadata
// patch keyed by the fixed service identifier.
func (c *httpCaseUpdateClient) UpdateWithRouting(
	ctx context.Context,
	caseID int64,
	update CaseUpdate,
	routing casedomain.RoutingMetadata,
) error {
	return c.send(ctx, caseID, caseUpdatePayload{
		EventType:   update.EventType,
		Summary:     update.Summary,
		Description: update.Description,
		Data:        update.Snapshot,
		SupplementaryData: map[string]map[string]any{
			serviceIdentifier: {
				"region":     routing.Region,
				"officeCode": routing.OfficeCode,
			},
		},
	})
}

func (c *httpCaseUpdateClient) send(ctx context.Context, caseID int64, payload caseUpdatePayload) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return apperrors.Wrap(err, "failed to obtain service token")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode case update: %w", err)
	}

	url := fmt.Sprintf("%s/cases/%d/events", c.baseURL, caseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build case update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("case update request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		c.logger.Info("case record updated",
			slog.Int64("case_id", caseID),
			slog.String("event_type", payload.EventType),
		)
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return casedomain.ErrCaseNotFound
	default:
		return fmt.Errorf("case update returned status %d", resp.StatusCode)
	}
}
