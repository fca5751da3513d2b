package wixstores

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL is the commerce platform's site API base URL.
	DefaultBaseURL = "https://www.wixapis.com"

	// pageSize is the page size used when walking the full catalog.
	pageSize = 100
)

// Config holds the credentials and endpoint for the commerce read API.
type Config struct {
	BaseURL string
	APIKey  string
	SiteID  string
}

// Client is a minimal HTTP client for the commerce platform's read API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	siteID     string
	debug      bool
}

// NewClient constructs a commerce client with sane defaults.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		siteID:     cfg.SiteID,
		debug:      os.Getenv("ENV") == "development",
	}
}

// QueryProducts retrieves the full product catalog, walking pages until the
// reported total is reached.
func (c *Client) QueryProducts(ctx context.Context) ([]RawProduct, error) {
	var all []RawProduct
	offset := 0
	for {
		req := queryRequest{}
		req.Query.Paging.Limit = pageSize
		req.Query.Paging.Offset = offset

		var resp queryProductsResponse
		if err := c.doRequest(ctx, "/stores-reader/v1/products/query", req, &resp); err != nil {
			return nil, err
		}
		all = append(all, resp.Products...)

		offset += len(resp.Products)
		if len(resp.Products) == 0 || offset >= resp.TotalResults {
			return all, nil
		}
	}
}

// QueryCollections retrieves the category/collection list.
func (c *Client) QueryCollections(ctx context.Context) ([]RawCollection, error) {
	req := queryRequest{}
	req.Query.Paging.Limit = pageSize

	var resp queryCollectionsResponse
	if err := c.doRequest(ctx, "/stores-reader/v1/collections/query", req, &resp); err != nil {
		return nil, err
	}
	return resp.Collections, nil
}

// doRequest performs an HTTP POST with JSON payloads and decodes the JSON
// response into result.
func (c *Client) doRequest(ctx context.Context, endpoint string, body any, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	if c.debug {
		log.Debug().
			Str("endpoint", c.baseURL+endpoint).
			RawJSON("request", payload).
			Msg("[WIXSTORES] Outgoing request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("wix-site-id", c.siteID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if c.debug {
		log.Debug().
			Str("endpoint", endpoint).
			Int("status_code", resp.StatusCode).
			RawJSON("response", respBody).
			Msg("[WIXSTORES] Incoming response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upstream returned status %d: %s", resp.StatusCode, respBody)
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
