package formrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Submission carries the subscription/contact form fields relayed upstream.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message,omitempty"`
}

// Client posts form submissions to a third-party form-relay endpoint.
// Fire-and-forget: one POST, no retries, the caller decides what to show.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient constructs a form-relay client for the given endpoint.
func NewClient(endpoint string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		endpoint:   endpoint,
	}
}

// Submit relays one submission. A non-2xx upstream status is an error.
func (c *Client) Submit(ctx context.Context, sub Submission) error {
	payload, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("form relay returned status %d", resp.StatusCode)
	}
	return nil
}
