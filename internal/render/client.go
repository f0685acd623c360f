package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// httpTemplateClient calls the external template rendering service over HTTP.
// The service accepts a template file name, an output document name and a
// field map, and returns raw PDF bytes.
type httpTemplateClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPTemplateClient creates a TemplateClient for the rendering service at
// baseURL.
func NewHTTPTemplateClient(baseURL string) TemplateClient {
	return &httpTemplateClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type generatePayload struct {
	TemplateName string         `json:"templateName"`
	OutputName   string         `json:"outputName"`
	Data         map[string]any `json:"data"`
	Archive      bool           `json:"archive"`
}

// Generate performs one render call. Any non-2xx response is an error; retry
// policy belongs to the caller.
func (c *httpTemplateClient) Generate(ctx context.Context, req GenerateRequest) ([]byte, error) {
	body, err := json.Marshal(generatePayload{
		TemplateName: req.TemplateName,
		OutputName:   req.OutputName,
		Data:         req.Fields,
		Archive:      req.Archive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode render request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/render",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build render request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("render request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("render request returned status %d", resp.StatusCode)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read rendered document: %w", err)
	}

	return content, nil
}
