package wixblog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the blog platform's read API base URL.
const DefaultBaseURL = "https://www.wixapis.com"

// Config holds the credentials and endpoint for the blog read API.
type Config struct {
	BaseURL string
	APIKey  string
	SiteID  string
}

// Client is a minimal HTTP client for the blog platform's read API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	siteID     string
	debug      bool
}

// NewClient constructs a blog client with sane defaults.
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

// ListPosts retrieves the published post list, newest first.
func (c *Client) ListPosts(ctx context.Context) ([]RawPost, error) {
	var resp listPostsResponse
	if err := c.doGet(ctx, "/blog/v3/posts?fieldsets=RICH_CONTENT", &resp); err != nil {
		return nil, err
	}
	return resp.Posts, nil
}

// GetPost retrieves a single post by its URL slug.
func (c *Client) GetPost(ctx context.Context, slug string) (*RawPost, error) {
	endpoint := "/blog/v3/posts/slugs/" + url.PathEscape(slug) + "?fieldsets=RICH_CONTENT"
	var resp getPostResponse
	if err := c.doGet(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return &resp.Post, nil
}

// doGet performs an HTTP GET and decodes the JSON response into result.
func (c *Client) doGet(ctx context.Context, endpoint string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
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
			Msg("[WIXBLOG] Incoming response")
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrPostNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upstream returned status %d: %s", resp.StatusCode, respBody)
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
