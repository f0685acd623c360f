package print

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/allisson/caseflow/internal/caserecord/client"
	apperrors "github.com/allisson/caseflow/internal/errors"
)

// channelTypeCode is the fixed channel identifier sent with every submission.
const channelTypeCode = "first-class-letter"

// DisabledSubmissionID is the deterministic identifier returned when printing
// is globally disabled. Non-production environments rely on it being stable.
const DisabledSubmissionID = "a5b3f5c6-0000-0000-0000-000000000000"

// httpPrintClient implements PrintClient against the external print channel's
// REST API.
type httpPrintClient struct {
	baseURL    string
	tokens     client.TokenProvider
	httpClient *http.Client
	logger     *slog.Logger
}

// NewPrintClient creates a PrintClient for the print channel at baseURL.
func NewPrintClient(baseURL string, tokens client.TokenProvider, logger *slog.Logger) PrintClient {
	return &httpPrintClient{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

type printJobPayload struct {
	Base64Pdfs      []string            `json:"base64Pdfs"`
	ChannelTypeCode string              `json:"channelTypeCode"`
	AdditionalData  printAdditionalData `json:"additionalData"`
}

type printAdditionalData struct {
	LetterType     string   `json:"letterType"`
	CaseIdentifier string   `json:"caseIdentifier"`
	AppellantName  string   `json:"appellantName"`
	Recipients     []string `json:"recipients"`
}

type printJobResponse struct {
	ID string `json:"id"`
}

// Submit sends the bundle to the print channel and returns its submission id.
func (c *httpPrintClient) Submit(ctx context.Context, request SubmissionRequest) (string, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to obtain service token")
	}

	pdfs := make([]string, 0, len(request.Documents))
	for _, doc := range request.Documents {
		pdfs = append(pdfs, base64.StdEncoding.EncodeToString(doc.Content))
	}

	payload := printJobPayload{
		Base64Pdfs:      pdfs,
		ChannelTypeCode: channelTypeCode,
		AdditionalData: printAdditionalData{
			LetterType:     request.LetterType,
			CaseIdentifier: fmt.Sprintf("%d", request.CaseID),
			AppellantName:  request.AppellantName,
			Recipients:     request.Recipients,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode print job: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/print-jobs", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build print job request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("print job request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		var job printJobResponse
		if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
			return "", fmt.Errorf("failed to decode print job response: %w", err)
		}

		c.logger.Info("print job submitted",
			slog.Int64("case_id", request.CaseID),
			slog.String("submission_id", job.ID),
			slog.Int("documents", len(request.Documents)),
		)

		return job.ID, nil
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnsupportedMediaType:
		return "", ErrMalformedDocument
	default:
		return "", fmt.Errorf("print channel returned status %d", resp.StatusCode)
	}
}

// disabledPrintClient short-circuits submissions when printing is turned off.
type disabledPrintClient struct {
	logger *slog.Logger
}

// NewDisabledPrintClient creates a PrintClient that never reaches the network
// and always returns the fixed submission id.
func NewDisabledPrintClient(logger *slog.Logger) PrintClient {
	return &disabledPrintClient{logger: logger}
}

// Submit returns the fixed submission id without any network call.
func (c *disabledPrintClient) Submit(_ context.Context, request SubmissionRequest) (string, error) {
	c.logger.Info("printing disabled, skipping submission",
		slog.Int64("case_id", request.CaseID),
		slog.Int("documents", len(request.Documents)),
	)
	return DisabledSubmissionID, nil
}
