// Package statussheet queries the spreadsheet-backed application status
// provider. The provider is consumed, never written; its failures are
// recovered by callers with a default status label.
package statussheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds the provider call so a hung third party can never
// hang the application-listing endpoint.
const DefaultTimeout = 5 * time.Second

// StatusRequest identifies the student to the provider
type StatusRequest struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// statusEntry is one row of the provider's response
type statusEntry struct {
	Company string `json:"company"`
	Status  string `json:"status"`
}

type statusResponse struct {
	Data []statusEntry `json:"data"`
}

// Client is an HTTP client for the status provider
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a provider client. A zero timeout falls back to
// DefaultTimeout.
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchStatuses retrieves the per-company status map for a student identity.
// The response list is reduced to a company → status mapping.
func (c *Client) FetchStatuses(ctx context.Context, req StatusRequest) (map[string]string, error) {
	if c.url == "" {
		return nil, fmt.Errorf("status sheet URL not configured")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode status request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build status request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("status provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status provider returned %d", resp.StatusCode)
	}

	var decoded statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode status response: %w", err)
	}

	statuses := make(map[string]string, len(decoded.Data))
	for _, entry := range decoded.Data {
		statuses[entry.Company] = entry.Status
	}

	return statuses, nil
}
