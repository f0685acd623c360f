package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// idamClient implements TokenProvider against the identity service, caching
// the leased token until shortly before it expires.
type idamClient struct {
	baseURL     string
	serviceUser string
	httpClient  *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewIdamClient creates a TokenProvider for the identity service at baseURL,
// leasing tokens on behalf of serviceUser.
func NewIdamClient(baseURL, serviceUser string) TokenProvider {
	return &idamClient{
		baseURL:     baseURL,
		serviceUser: serviceUser,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type leaseRequest struct {
	ServiceUser string `json:"serviceUser"`
}

type leaseResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

// Token returns a cached token or leases a new one.
func (c *idamClient) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.expiresAt) {
		return c.token, nil
	}

	body, err := json.Marshal(leaseRequest{ServiceUser: c.serviceUser})
	if err != nil {
		return "", fmt.Errorf("failed to encode token lease request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/lease", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build token lease request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token lease request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("token lease returned status %d", resp.StatusCode)
	}

	var lease leaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&lease); err != nil {
		return "", fmt.Errorf("failed to decode token lease response: %w", err)
	}

	c.token = lease.Token
	// Renew a minute early to avoid using a token at the edge of its lease.
	c.expiresAt = time.Now().Add(time.Duration(lease.ExpiresIn)*time.Second - time.Minute)

	return c.token, nil
}
